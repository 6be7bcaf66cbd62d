// pattern: Functional Core

package layout

import "sort"

// Window is a rectangular pane on the terminal grid.
// Constraint fields use 0 for "unset".
type Window struct {
	ID   string
	Row  int // Top position (0-indexed)
	Col  int // Left position (0-indexed)
	Rows int // Height in lines
	Cols int // Width in cells

	MinRows int
	MinCols int
	MaxRows int
	MaxCols int

	StaticHeight bool
	StaticWidth  bool
}

// Fixed reports whether the window is immobile on both axes.
func (w *Window) Fixed() bool {
	return w.StaticHeight && w.StaticWidth
}

// Rect returns the window's current geometry.
func (w *Window) Rect() Rect {
	return Rect{Row: w.Row, Col: w.Col, Rows: w.Rows, Cols: w.Cols}
}

// Rect is a window's geometry with no identity or constraints attached.
type Rect struct {
	Row  int
	Col  int
	Rows int
	Cols int
}

// Bottom returns the first row below the rect.
func (r Rect) Bottom() int { return r.Row + r.Rows }

// Right returns the first column right of the rect.
func (r Rect) Right() int { return r.Col + r.Cols }

// HasCol reports whether column c falls inside the rect.
func (r Rect) HasCol(c int) bool { return r.Col <= c && c < r.Right() }

// HasRow reports whether row r falls inside the rect.
func (r Rect) HasRow(row int) bool { return r.Row <= row && row < r.Bottom() }

// Baseline is an immutable copy of every window's geometry, taken before a
// calculation phase mutates anything.
type Baseline map[*Window]Rect

// Snapshot copies the current geometry of windows.
func Snapshot(windows []*Window) Baseline {
	b := make(Baseline, len(windows))
	for _, w := range windows {
		b[w] = w.Rect()
	}
	return b
}

// Deltas maps each window to its signed size change on one axis.
type Deltas map[*Window]int

// Sum returns the total of all deltas.
func (d Deltas) Sum() int {
	total := 0
	for _, v := range d {
		total += v
	}
	return total
}

// inColumn returns the windows whose baseline occupies column c, top to bottom.
// Ties on row fall back to column, then to the order in windows.
func inColumn(b Baseline, windows []*Window, c int) []*Window {
	var out []*Window
	for _, w := range windows {
		if b[w].HasCol(c) {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := b[out[i]], b[out[j]]
		if ri.Row != rj.Row {
			return ri.Row < rj.Row
		}
		return ri.Col < rj.Col
	})
	return out
}

// inRow returns the windows whose baseline occupies row r, left to right.
func inRow(b Baseline, windows []*Window, r int) []*Window {
	var out []*Window
	for _, w := range windows {
		if b[w].HasRow(r) {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := b[out[i]], b[out[j]]
		if ri.Col != rj.Col {
			return ri.Col < rj.Col
		}
		return ri.Row < rj.Row
	})
	return out
}
