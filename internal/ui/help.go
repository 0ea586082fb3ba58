package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelp builds the footer help model styled for theme.
func newHelp(theme Theme) help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	key := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning)).Background(lipgloss.Color(theme.Surface))
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)).Background(lipgloss.Color(theme.Surface))
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint)).Background(lipgloss.Color(theme.Surface))
	h.Styles.ShortKey = key
	h.Styles.ShortDesc = desc
	h.Styles.ShortSeparator = sep
	h.Styles.Ellipsis = sep
	h.Styles.FullKey = key
	h.Styles.FullDesc = desc
	h.Styles.FullSeparator = sep
	return h
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	titles := []string{"Navigation", "Wallpaper", "General"}

	var b strings.Builder

	// Title
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	groups := m.keys.FullHelp()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)
	for i, group := range groups {
		if i < len(titles) {
			b.WriteString(styles.AccentText.Bold(true).Render(titles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			hint := binding.Help()
			b.WriteString(keyStyle.Render(hint.Key))
			b.WriteString(styles.Text.Render(hint.Desc))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
