package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const appTitle = "walt"

// bandPadding is the horizontal padding of the header and footer styles.
const bandPadding = 2

// renderHeader renders the title band: the app name, then the setter target
// and wallpaper directory.
func (m Model) renderHeader(r rect) string {
	if r.Height <= 0 || r.Width <= bandPadding {
		return blank(r)
	}
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	band := styles.Header.Width(r.Width).MaxWidth(r.Width)
	inner := r.Width - bandPadding

	title := band.Render(truncate(bg.Render(appTitle, styles.Logo), inner))
	if r.Height == 1 {
		return title
	}

	sep := bg.Spaces(1) + bg.Render("•", styles.FaintText) + bg.Spaces(1)
	target := bg.Render(m.platform.String(), styles.AccentText) + sep +
		bg.Render(m.platform.Binary(), styles.MutedText)
	if m.dir != "" {
		room := inner - lipgloss.Width(target) - lipgloss.Width(sep)
		if room > 3 {
			target += sep + bg.Render(truncateMiddle(sanitize(m.dir), room), styles.MutedText)
		}
	}
	sub := band.Render(truncate(target, inner))

	return lipgloss.JoinVertical(lipgloss.Left, title, sub)
}

// renderFooter renders the last action status followed by the short key help.
func (m Model) renderFooter(r rect) string {
	if r.Height <= 0 || r.Width <= bandPadding {
		return blank(r)
	}
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	inner := r.Width - bandPadding

	var line string
	if m.status.text != "" {
		style := styles.SuccessText
		if m.status.failed {
			style = styles.DangerText
		}
		line = bg.Render(sanitize(m.status.text), style) + bg.Spaces(2)
	}

	h := m.help
	h.Width = max(inner-lipgloss.Width(line), 0)
	if h.Width > 0 {
		line += h.ShortHelpView(m.keys.ShortHelp())
	}

	return styles.Footer.Width(r.Width).MaxWidth(r.Width).Render(truncate(line, inner))
}
