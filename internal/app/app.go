package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/five82/walt/internal/catalog"
	"github.com/five82/walt/internal/config"
	"github.com/five82/walt/internal/logging"
	"github.com/five82/walt/internal/prefs"
	"github.com/five82/walt/internal/selection"
	"github.com/five82/walt/internal/setter"
	"github.com/five82/walt/internal/ui"
)

// Options configure the walt application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/walt/prefs.toml
	NoTUI      bool   // apply one random wallpaper and return

	// Stdout receives the one-shot result line. Defaults to os.Stdout.
	Stdout io.Writer
	// Getenv reads the session environment. Defaults to os.Getenv.
	Getenv func(string) string
	// Launcher starts setter processes. Defaults to setter.ExecLauncher.
	Launcher setter.Launcher

	runUI func(ui.Options) error
}

// Run boots walt until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := logging.Open(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = closeLog() }()

	platform := resolvePlatform(cfg.Platform, opts.Getenv)
	setterOpts := []setter.Option{setter.WithLogger(log)}
	if opts.Launcher != nil {
		setterOpts = append(setterOpts, setter.WithLauncher(opts.Launcher))
	}
	s := setter.New(platform, setterOpts...)

	if err := s.Probe(); err != nil {
		log.WithError(err).Error("setter binary unavailable")
		return fmt.Errorf("%s not available: %w", platform.Binary(), err)
	}

	keep, err := catalog.MatchAny(cfg.Include)
	if err != nil {
		return fmt.Errorf("include: %w", err)
	}
	items, err := catalog.Build(cfg.WallpaperDir, keep)
	if err != nil {
		log.WithError(err).Error("wallpaper directory unreadable")
		return fmt.Errorf("load wallpapers: %w", err)
	}

	log.WithFields(logrus.Fields{
		"platform": platform.String(),
		"dir":      cfg.WallpaperDir,
		"items":    len(items),
		"no_tui":   opts.NoTUI,
	}).Info("walt starting")

	if opts.NoTUI {
		return applyOnce(opts.stdout(), s, items)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.WithError(err).Warn("load prefs failed; using defaults")
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Catalog:   items,
		Setter:    s,
		Platform:  platform,
		Dir:       cfg.WallpaperDir,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Log:       log,
	}
	runUI := opts.runUI
	if runUI == nil {
		runUI = ui.Run
	}
	if err := runUI(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// applyOnce sets one random wallpaper and reports its name. An empty catalog
// returns EmptyCatalog, so a one-shot run with nothing to set exits non-zero
// instead of printing nothing and reporting success.
func applyOnce(w io.Writer, a selection.Applier, items catalog.Catalog) error {
	sel := selection.New(items)
	item, err := sel.Random(a)
	if err != nil {
		return fmt.Errorf("set random wallpaper: %w", err)
	}
	_, err = fmt.Fprintln(w, item.Name)
	return err
}

// resolvePlatform prefers the configured platform and otherwise reads the
// session type.
func resolvePlatform(configured string, getenv func(string) string) setter.Platform {
	if configured != "" {
		return setter.Parse(configured)
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	return setter.Detect(getenv)
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}
