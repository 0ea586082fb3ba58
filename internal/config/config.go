package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings walt reads at startup.
type Config struct {
	WallpaperDir string
	Platform     string // "", "wayland" or "x11"; empty means detect
	Include      []string
	LogFile      string
}

const (
	defaultConfigPath   = "~/.config/walt/config.toml"
	defaultWallpaperDir = "~/Pictures/Wallpapers"
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the walt config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{WallpaperDir: mustExpand(defaultWallpaperDir)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		WallpaperDir string   `toml:"wallpaper_dir"`
		Platform     string   `toml:"platform"`
		Include      []string `toml:"include"`
		LogFile      string   `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.WallpaperDir); dir != "" {
		cfg.WallpaperDir, err = expandPath(dir)
		if err != nil {
			return Config{}, fmt.Errorf("wallpaper_dir: %w", err)
		}
	}

	cfg.Platform = strings.ToLower(strings.TrimSpace(raw.Platform))
	switch cfg.Platform {
	case "", "wayland", "x11":
	default:
		return Config{}, fmt.Errorf("platform %q: want wayland or x11", raw.Platform)
	}

	for _, pattern := range raw.Include {
		if p := strings.TrimSpace(pattern); p != "" {
			cfg.Include = append(cfg.Include, p)
		}
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	// Only the current user's home is expanded; "~other" is left as written.
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
