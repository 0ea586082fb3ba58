// Package selection tracks the highlighted wallpaper.
//
// Movement clamps at both ends of the list; it never wraps.
package selection

import (
	"github.com/five82/walt/internal/catalog"
)

// Applier sets wallpapers. *setter.Setter implements it.
type Applier interface {
	Apply(path string) error
	ApplyRandom(items catalog.Catalog) (int, error)
}

// Model is the catalog plus a single cursor. Build it with New; a cursor
// outside the catalog means nothing is selected, which only happens when the
// catalog is empty.
type Model struct {
	items  catalog.Catalog
	cursor int
}

// New selects the first item when items is non-empty.
func New(items catalog.Catalog) Model {
	m := Model{items: items, cursor: -1}
	if len(items) > 0 {
		m.cursor = 0
	}
	return m
}

// Items returns the catalog backing the model.
func (m Model) Items() catalog.Catalog { return m.items }

// Len returns the number of items.
func (m Model) Len() int { return len(m.items) }

// Selected returns the cursor index and whether one is set.
func (m Model) Selected() (int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return -1, false
	}
	return m.cursor, true
}

// Current returns the highlighted item.
func (m Model) Current() (catalog.Item, bool) {
	idx, ok := m.Selected()
	if !ok {
		return catalog.Item{}, false
	}
	return m.items[idx], true
}

// Next moves one item forward, stopping at the last item.
func (m *Model) Next() {
	if _, ok := m.Selected(); ok && m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// Previous moves one item back, stopping at the first item.
func (m *Model) Previous() {
	if _, ok := m.Selected(); ok && m.cursor > 0 {
		m.cursor--
	}
}

// First jumps to index 0.
func (m *Model) First() {
	if len(m.items) > 0 {
		m.cursor = 0
	}
}

// Last jumps to the final index.
func (m *Model) Last() {
	if len(m.items) > 0 {
		m.cursor = len(m.items) - 1
	}
}

// Select moves the cursor to i. Out of range indices are ignored.
func (m *Model) Select(i int) bool {
	if i < 0 || i >= len(m.items) {
		return false
	}
	m.cursor = i
	return true
}

// Commit applies the highlighted item. It is a no-op without a selection.
func (m Model) Commit(a Applier) (catalog.Item, error) {
	item, ok := m.Current()
	if !ok {
		return catalog.Item{}, nil
	}
	return item, a.Apply(item.Path)
}

// Random asks a to apply a random item and moves the cursor to it, so the
// list always shows what was applied.
func (m *Model) Random(a Applier) (catalog.Item, error) {
	idx, err := a.ApplyRandom(m.items)
	if !m.Select(idx) {
		return catalog.Item{}, err
	}
	return m.items[idx], err
}
