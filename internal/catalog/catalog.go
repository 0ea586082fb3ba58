// Package catalog lists the wallpapers available for a session.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"

	"github.com/five82/walt/internal/apperr"
)

// Item is one selectable wallpaper.
type Item struct {
	Path string
	Name string
}

// NewItem builds an Item, deriving its display name from path.
func NewItem(path string) Item {
	return Item{Path: path, Name: DisplayName(path)}
}

// DisplayName returns the part of path after the last separator, or path
// itself when it has none.
func DisplayName(path string) string {
	idx := strings.LastIndexByte(path, '/')
	if filepath.Separator != '/' {
		idx = max(idx, strings.LastIndexByte(path, filepath.Separator))
	}
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}

// Catalog is the ordered list of wallpapers. The order is the directory
// enumeration order and is not sorted.
type Catalog []Item

// Paths returns the item paths in catalog order.
func (c Catalog) Paths() []string {
	out := make([]string, len(c))
	for i, item := range c {
		out[i] = item.Path
	}
	return out
}

// Filter decides whether an entry name belongs in the catalog.
type Filter func(name string) bool

// MatchAny returns a Filter accepting names that match at least one glob
// pattern. No patterns yields a nil Filter, which accepts everything.
func MatchAny(patterns []string) (Filter, error) {
	var globs []glob.Glob
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile include pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	if len(globs) == 0 {
		return nil, nil
	}
	return func(name string) bool {
		for _, g := range globs {
			if g.Match(name) {
				return true
			}
		}
		return false
	}, nil
}

// Build lists the direct children of dir. Entries whose name is not valid
// UTF-8, directories, links that do not resolve, and names rejected by keep
// are skipped. Only failures on dir itself are returned. Unlike a plain
// listing, subdirectories never appear since they cannot be set as a
// wallpaper.
func Build(dir string, keep Filter) (Catalog, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, apperr.Wrap("open wallpaper dir", dir, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, apperr.Wrap("stat wallpaper dir", dir, err)
	}
	if !info.IsDir() {
		return nil, &apperr.Error{Kind: apperr.IO, Op: "read wallpaper dir", Path: dir, Err: fmt.Errorf("not a directory")}
	}

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, apperr.Wrap("read wallpaper dir", dir, err)
	}

	items := make(Catalog, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !utf8.ValidString(name) {
			continue
		}
		if keep != nil && !keep(name) {
			continue
		}
		path := filepath.Join(dir, name)
		if !usable(path, entry) {
			continue
		}
		items = append(items, NewItem(path))
	}
	return items, nil
}

func usable(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return false
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return true
	}
	target, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !target.IsDir()
}
