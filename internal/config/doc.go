// Package config loads walt's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/walt/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/walt/config.toml
//   - Wallpaper directory: ~/Pictures/Wallpapers
//   - Platform: detected from XDG_SESSION_TYPE (wayland, otherwise x11)
//   - Include patterns: none (every entry in the directory is listed)
//   - Log file: none (logging disabled)
//
// # TOML Format
//
//	wallpaper_dir = "~/Pictures/Wallpapers"
//	platform = "wayland"
//	include = ["*.png", "*.{jpg,jpeg}"]
//	log_file = "~/.local/state/walt/walt.log"
//
// Paths starting with ~ are expanded against the user's home directory and
// made absolute. An unknown platform or malformed TOML is an error; walt
// refuses to start rather than guess.
package config
