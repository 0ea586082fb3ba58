// Package app is the composition root for walt.
//
// Run wires the pieces together in a fixed order:
//
//  1. Load ~/.config/walt/config.toml (or the --config override)
//  2. Open the file logger named by log_file
//  3. Resolve the platform from config or XDG_SESSION_TYPE
//  4. Probe the setter binary (swww or feh) by spawning it with --version
//  5. Build the wallpaper catalog from wallpaper_dir
//  6. Either apply one random wallpaper and print its name (--no-tui), or
//     start the terminal picker and block until the user quits
//
// Steps 1 to 5 are fatal: a bad config, a missing setter binary or an
// unreadable wallpaper directory is returned to the caller before the
// terminal is touched. Once the picker is running, failed actions are shown
// in its footer instead.
package app
