// pattern: Functional Core

package layout

// axis describes one scan direction. The height phase scans columns and
// sizes rows; the width phase scans rows and sizes columns.
type axis struct {
	lineAt func(b Baseline, windows []*Window, line int) []*Window
	pos    func(r Rect) int
	size   func(r Rect) int
	static func(w *Window) bool
	bounds func(w *Window) (lo, hi int)
	place  func(w *Window, pos, size int)
}

var heightAxis = axis{
	lineAt: inColumn,
	pos:    func(r Rect) int { return r.Row },
	size:   func(r Rect) int { return r.Rows },
	static: func(w *Window) bool { return w.StaticHeight },
	bounds: func(w *Window) (int, int) { return w.MinRows, w.MaxRows },
	place:  func(w *Window, pos, size int) { w.Row, w.Rows = pos, size },
}

var widthAxis = axis{
	lineAt: inRow,
	pos:    func(r Rect) int { return r.Col },
	size:   func(r Rect) int { return r.Cols },
	static: func(w *Window) bool { return w.StaticWidth },
	bounds: func(w *Window) (int, int) { return w.MinCols, w.MaxCols },
	place:  func(w *Window, pos, size int) { w.Col, w.Cols = pos, size },
}

// HeightDeltas distributes heightDelta across windows column by column.
// A window is resolved at the leftmost column it occupies and never again.
// Proportions are read from b only.
func HeightDeltas(b Baseline, windows []*Window, heightDelta, totalCols int) Deltas {
	return computeDeltas(heightAxis, b, windows, heightDelta, totalCols)
}

// WidthDeltas distributes widthDelta across windows row by row.
// A window is resolved at the topmost row it occupies and never again.
func WidthDeltas(b Baseline, windows []*Window, widthDelta, totalRows int) Deltas {
	return computeDeltas(widthAxis, b, windows, widthDelta, totalRows)
}

func computeDeltas(ax axis, b Baseline, windows []*Window, delta, lines int) Deltas {
	out := make(Deltas, len(windows))

	for line := 0; line < lines; line++ {
		var scalable []*Window
		total := 0
		for _, w := range ax.lineAt(b, windows, line) {
			if _, done := out[w]; done {
				continue
			}
			if ax.static(w) {
				out[w] = 0
				continue
			}
			scalable = append(scalable, w)
			total += ax.size(b[w])
		}
		if total == 0 {
			continue
		}

		assigned := 0
		for _, w := range scalable {
			d := floorDiv(delta*ax.size(b[w]), total)
			out[w] = d
			assigned += d
		}
		spreadLeftover(out, scalable, delta-assigned)
	}

	// Windows outside the scanned range still get exactly one delta.
	for _, w := range windows {
		if _, done := out[w]; !done {
			out[w] = 0
		}
	}
	return out
}

// spreadLeftover hands out leftover one unit at a time, in order, cycling
// through ws until nothing remains.
func spreadLeftover(out Deltas, ws []*Window, leftover int) {
	if len(ws) == 0 {
		return
	}
	step := 1
	if leftover < 0 {
		step = -1
	}
	for i := 0; leftover != 0; i++ {
		out[ws[i%len(ws)]] += step
		leftover -= step
	}
}

// floorDiv divides rounding toward negative infinity. den must be positive.
func floorDiv(num, den int) int {
	q := num / den
	if num%den != 0 && num < 0 {
		q--
	}
	return q
}
