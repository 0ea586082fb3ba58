package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/walt/internal/apperr"
	"github.com/five82/walt/internal/setter"
	"github.com/five82/walt/internal/ui"
)

type fakeLauncher struct {
	calls   [][]string
	failFor string
}

func (f *fakeLauncher) Launch(name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if name == f.failFor {
		return &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return nil
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func wallpaperDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func noEnv(string) string { return "" }

func TestRunNoTUIAppliesAndPrints(t *testing.T) {
	dir := wallpaperDir(t, "only.png")
	cfg := writeConfig(t, fmt.Sprintf("wallpaper_dir = %q\nplatform = \"wayland\"\n", dir))
	launcher := &fakeLauncher{}
	var out bytes.Buffer

	err := Run(context.Background(), Options{
		ConfigPath: cfg,
		NoTUI:      true,
		Stdout:     &out,
		Getenv:     noEnv,
		Launcher:   launcher,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := out.String(); got != "only.png\n" {
		t.Fatalf("stdout = %q, want only.png", got)
	}

	want := [][]string{
		{"swww", "--version"},
		{"swww", "img", filepath.Join(dir, "only.png"), "--transition-step", "10"},
	}
	if diff := cmp.Diff(want, launcher.calls); diff != "" {
		t.Fatalf("launch calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRunDetectsPlatformFromEnv(t *testing.T) {
	dir := wallpaperDir(t, "a.jpg")
	cfg := writeConfig(t, fmt.Sprintf("wallpaper_dir = %q\n", dir))
	launcher := &fakeLauncher{}

	err := Run(context.Background(), Options{
		ConfigPath: cfg,
		NoTUI:      true,
		Stdout:     &bytes.Buffer{},
		Getenv:     noEnv,
		Launcher:   launcher,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(launcher.calls) == 0 || launcher.calls[0][0] != "feh" {
		t.Fatalf("calls = %v, want feh probe first", launcher.calls)
	}
}

func TestRunMissingBinaryIsFatal(t *testing.T) {
	dir := wallpaperDir(t, "a.png")
	cfg := writeConfig(t, fmt.Sprintf("wallpaper_dir = %q\nplatform = \"x11\"\n", dir))
	launcher := &fakeLauncher{failFor: "feh"}
	uiStarted := false

	err := Run(context.Background(), Options{
		ConfigPath: cfg,
		Getenv:     noEnv,
		Launcher:   launcher,
		runUI:      func(ui.Options) error { uiStarted = true; return nil },
	})
	if err == nil {
		t.Fatalf("Run returned nil, want probe error")
	}
	if !errors.Is(err, apperr.NotFound) {
		t.Fatalf("Run error = %v, want NotFound", err)
	}
	if !strings.Contains(err.Error(), "feh not available") {
		t.Fatalf("Run error = %q, want binary named", err)
	}
	if uiStarted {
		t.Fatalf("UI started despite missing setter")
	}
}

func TestRunMissingDirectoryIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	cfg := writeConfig(t, fmt.Sprintf("wallpaper_dir = %q\n", missing))

	err := Run(context.Background(), Options{
		ConfigPath: cfg,
		Getenv:     noEnv,
		Launcher:   &fakeLauncher{},
		runUI:      func(ui.Options) error { t.Fatalf("UI started"); return nil },
	})
	if !errors.Is(err, apperr.NotFound) {
		t.Fatalf("Run error = %v, want NotFound", err)
	}
}

func TestRunNoTUIEmptyCatalog(t *testing.T) {
	cfg := writeConfig(t, fmt.Sprintf("wallpaper_dir = %q\n", wallpaperDir(t)))
	var out bytes.Buffer

	err := Run(context.Background(), Options{
		ConfigPath: cfg,
		NoTUI:      true,
		Stdout:     &out,
		Getenv:     noEnv,
		Launcher:   &fakeLauncher{},
	})
	if !errors.Is(err, apperr.EmptyCatalog) {
		t.Fatalf("Run error = %v, want EmptyCatalog", err)
	}
	if out.Len() != 0 {
		t.Fatalf("stdout = %q, want empty", out.String())
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := writeConfig(t, "wallpaper_dir = [")
	err := Run(context.Background(), Options{ConfigPath: cfg, Getenv: noEnv, Launcher: &fakeLauncher{}})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run error = %v, want load config failure", err)
	}
}

func TestRunPassesStateToUI(t *testing.T) {
	dir := wallpaperDir(t, "a.png", "b.png", "notes.txt")
	logFile := filepath.Join(t.TempDir(), "logs", "walt.log")
	cfg := writeConfig(t, fmt.Sprintf("wallpaper_dir = %q\ninclude = [\"*.png\"]\nlog_file = %q\n", dir, logFile))
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsPath, []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}

	var got ui.Options
	err := Run(context.Background(), Options{
		ConfigPath: cfg,
		PrefsPath:  prefsPath,
		Getenv:     func(string) string { return "wayland" },
		Launcher:   &fakeLauncher{},
		runUI:      func(o ui.Options) error { got = o; return nil },
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got.Platform != setter.Wayland {
		t.Fatalf("Platform = %v, want wayland", got.Platform)
	}
	if got.Dir != dir || got.ThemeName != "Slate" || got.PrefsPath != prefsPath {
		t.Fatalf("ui options = %+v", got)
	}
	if len(got.Catalog) != 2 {
		t.Fatalf("catalog = %v, want the two png files", got.Catalog.Paths())
	}
	if got.Setter == nil || got.Log == nil || got.Context == nil {
		t.Fatalf("ui options missing collaborators: %+v", got)
	}

	logged, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(logged), "walt starting") {
		t.Fatalf("log missing startup entry:\n%s", logged)
	}
}

func TestRunWrapsUIError(t *testing.T) {
	cfg := writeConfig(t, fmt.Sprintf("wallpaper_dir = %q\n", wallpaperDir(t, "a.png")))
	boom := errors.New("tty gone")
	err := Run(context.Background(), Options{
		ConfigPath: cfg,
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
		Getenv:     noEnv,
		Launcher:   &fakeLauncher{},
		runUI:      func(ui.Options) error { return boom },
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want %v", err, boom)
	}
}

func TestResolvePlatform(t *testing.T) {
	wayland := func(string) string { return "wayland" }
	if got := resolvePlatform("x11", wayland); got != setter.X11 {
		t.Fatalf("config x11 overridden by env: %v", got)
	}
	if got := resolvePlatform("", wayland); got != setter.Wayland {
		t.Fatalf("env wayland ignored: %v", got)
	}
	if got := resolvePlatform("", noEnv); got != setter.X11 {
		t.Fatalf("unset env = %v, want x11", got)
	}
}
