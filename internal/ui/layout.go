package ui

// Fixed region sizes.
const (
	// HeaderHeight is the number of rows used by the title band.
	HeaderHeight = 2

	// FooterHeight is the number of rows used by the key help band.
	FooterHeight = 1

	// ListWidthPercent is the share of the main band given to the list.
	ListWidthPercent = 30
)

// rect is a region of the terminal in cells.
type rect struct {
	X, Y          int
	Width, Height int
}

// layout holds the four regions of a frame.
type layout struct {
	Header  rect
	List    rect
	Preview rect
	Footer  rect
}

// computeLayout splits a width x height screen into header, list, preview and
// footer regions. Regions shrink to zero rather than going negative.
func computeLayout(width, height int) layout {
	width = max(width, 0)
	height = max(height, 0)

	headerH := min(HeaderHeight, height)
	footerH := min(FooterHeight, height-headerH)
	mainH := height - headerH - footerH
	listW := width * ListWidthPercent / 100

	return layout{
		Header:  rect{X: 0, Y: 0, Width: width, Height: headerH},
		List:    rect{X: 0, Y: headerH, Width: listW, Height: mainH},
		Preview: rect{X: listW, Y: headerH, Width: width - listW, Height: mainH},
		Footer:  rect{X: 0, Y: headerH + mainH, Width: width, Height: footerH},
	}
}

// listRows returns how many catalog rows fit in the list region: the border
// takes two rows and the title one.
func listRows(height int) int {
	return max(computeLayout(0, height).List.Height-3, 0)
}

// scrollOffset returns the first visible row so that selected stays on
// screen, moving as little as possible from the previous offset.
func scrollOffset(offset, selected, count, rows int) int {
	if rows <= 0 || count <= rows {
		return 0
	}
	selected = max(selected, 0)
	if selected < offset {
		offset = selected
	}
	if selected >= offset+rows {
		offset = selected - rows + 1
	}
	return min(max(offset, 0), count-rows)
}
