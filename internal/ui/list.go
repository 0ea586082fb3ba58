package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	highlightMarker = "> "
	plainMarker     = "  "
)

// renderMain composes header, list, preview and footer into one frame.
func (m Model) renderMain() string {
	l := computeLayout(m.width, m.height)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(l.List),
		m.renderPreview(l.Preview),
	)

	parts := make([]string, 0, 3)
	for _, part := range []string{m.renderHeader(l.Header), body, m.renderFooter(l.Footer)} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderList renders the catalog names with the highlighted row marked.
func (m Model) renderList(r rect) string {
	innerW, innerH := r.Width-2, r.Height-2
	if innerW <= 0 || innerH <= 0 {
		return blank(r)
	}
	styles := m.theme.Styles()

	lines := []string{titleLine("Images", innerW, styles)}
	rows := innerH - 1
	items := m.selection.Items()
	selected, hasSelection := m.selection.Selected()

	if len(items) == 0 && rows > 0 {
		lines = append(lines, styles.MutedText.Render(truncate("No wallpapers found", innerW)))
	}

	start := scrollOffset(m.offset, selected, len(items), rows)
	end := min(start+rows, len(items))
	for i := start; i < end; i++ {
		marker := plainMarker
		style := styles.Text
		if hasSelection && i == selected {
			marker = highlightMarker
			style = styles.Selected
		}
		text := padRight(truncate(marker+sanitize(items[i].Name), innerW), innerW)
		lines = append(lines, style.Render(text))
	}

	return styles.Border.
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}

// renderPreview renders the preview panel. Only its frame and title are drawn.
func (m Model) renderPreview(r rect) string {
	innerW, innerH := r.Width-2, r.Height-2
	if innerW <= 0 || innerH <= 0 {
		return blank(r)
	}
	styles := m.theme.Styles()

	return styles.Border.
		Width(innerW).
		Height(innerH).
		Render(titleLine("Preview", innerW, styles))
}

func titleLine(title string, width int, styles Styles) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.Title.Render(truncate(title, width)))
}

// blank fills a region too small for a bordered panel.
func blank(r rect) string {
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", r.Width)
	return strings.TrimSuffix(strings.Repeat(line+"\n", r.Height), "\n")
}
