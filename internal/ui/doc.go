// Package ui provides the terminal picker for walt.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Bubble Tea owns the alternate screen and
// delivers one key press at a time to Model.Update, which mutates the
// selection or applies a wallpaper and returns; Model.View then draws the
// next frame from the model alone. There is no timer or background refresh:
// nothing changes until the next key arrives.
//
// # Package Structure
//
//   - app.go: Model, Options, key dispatch and the Run entry point
//   - keys.go: key bindings (bubbles/key) shared by dispatch and help
//   - layout.go: region geometry and list scrolling
//   - list.go: frame composition, the wallpaper list and the preview panel
//   - header.go: title band and footer status/help line
//   - help.go: full key binding overlay
//   - theme.go: color palettes and lipgloss styles
//
// # Layout
//
//	┌──────────────────────── walt ────────────────────────┐  header (2 rows)
//	│ Images (30%)  │ Preview                               │
//	│ > sea.png     │                                       │  main
//	│   forest.jpg  │                                       │
//	└───────────────┴───────────────────────────────────────┘
//	  Applied sea.png  j/↓ down • k/↑ up • enter set wallpaper …   footer (1 row)
//
// # Key Bindings
//
//   - j/down, k/up: Move the highlight (stops at either end)
//   - g/home, G/end: Jump to first/last wallpaper
//   - enter: Set the highlighted wallpaper
//   - r: Set a random wallpaper and highlight it
//   - T: Cycle theme (saved to prefs)
//   - ?: Toggle help
//   - q, esc or ctrl+c: Exit
//
// A failed apply is shown in the footer and the picker keeps running.
package ui
