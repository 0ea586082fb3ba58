// Package setter applies wallpapers by spawning the platform's setter binary.
package setter

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/five82/walt/internal/apperr"
	"github.com/five82/walt/internal/catalog"
)

// Rand draws an index in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.Intn(n) }

// Setter dispatches wallpaper changes for a single Platform.
type Setter struct {
	platform Platform
	launcher Launcher
	rand     Rand
	log      logrus.FieldLogger
}

// Option customises a Setter.
type Option func(*Setter)

// WithLauncher replaces the process launcher.
func WithLauncher(l Launcher) Option {
	return func(s *Setter) { s.launcher = l }
}

// WithRand replaces the random source used by ApplyRandom.
func WithRand(r Rand) Option {
	return func(s *Setter) { s.rand = r }
}

// WithLogger sets the logger used for spawn records.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Setter) { s.log = log }
}

// New returns a Setter for platform.
func New(platform Platform, opts ...Option) *Setter {
	s := &Setter{platform: platform, rand: globalRand{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		s.log = quiet
	}
	if s.launcher == nil {
		s.launcher = ExecLauncher{Log: s.log}
	}
	return s
}

// Platform returns the platform the Setter targets.
func (s *Setter) Platform() Platform { return s.platform }

// Apply starts the setter for path. It returns once the process has been
// spawned.
func (s *Setter) Apply(path string) error {
	name, args := Command(s.platform, path)
	s.log.WithFields(logrus.Fields{"binary": name, "args": args}).Info("applying wallpaper")
	if err := s.launcher.Launch(name, args...); err != nil {
		s.log.WithError(err).WithField("binary", name).Error("setter spawn failed")
		return apperr.Wrap("spawn "+name, "", err)
	}
	return nil
}

// ApplyRandom applies a uniformly drawn item and returns its index. An empty
// catalog yields -1 and EmptyCatalog. When the spawn fails the drawn index is
// still returned alongside the error.
func (s *Setter) ApplyRandom(items catalog.Catalog) (int, error) {
	if len(items) == 0 {
		return -1, &apperr.Error{Kind: apperr.EmptyCatalog, Op: "pick random wallpaper"}
	}
	idx := s.rand.IntN(len(items))
	return idx, s.Apply(items[idx].Path)
}

// Probe spawns the setter binary with a harmless flag to confirm it is
// installed.
func (s *Setter) Probe() error {
	name, args := ProbeCommand(s.platform)
	if err := s.launcher.Launch(name, args...); err != nil {
		return apperr.Wrap("probe", name, err)
	}
	return nil
}
