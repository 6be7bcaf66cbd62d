// pattern: Functional Core

package layout

// ApplyHeights resizes and restacks windows column by column.
// In each column, windows are laid out top to bottom starting at the first
// window's baseline row; a window already placed by an earlier column keeps
// its final geometry and only advances the cursor.
func ApplyHeights(b Baseline, windows []*Window, deltas Deltas, totalCols int) {
	applyDeltas(heightAxis, b, windows, deltas, totalCols)
}

// ApplyWidths resizes and restacks windows row by row, left to right.
func ApplyWidths(b Baseline, windows []*Window, deltas Deltas, totalRows int) {
	applyDeltas(widthAxis, b, windows, deltas, totalRows)
}

func applyDeltas(ax axis, b Baseline, windows []*Window, deltas Deltas, lines int) {
	visited := make(map[*Window]bool, len(windows))

	for line := 0; line < lines; line++ {
		stack := ax.lineAt(b, windows, line)
		if len(stack) == 0 {
			continue
		}

		cursor := ax.pos(b[stack[0]])
		for _, w := range stack {
			if visited[w] {
				cursor += ax.size(w.Rect())
				continue
			}
			visited[w] = true

			// Fixed windows never move; the stack resumes below them.
			if w.Fixed() {
				cursor = ax.pos(w.Rect()) + ax.size(w.Rect())
				continue
			}

			size := ax.size(b[w])
			if !ax.static(w) {
				lo, hi := ax.bounds(w)
				size = clamp(size+deltas[w], lo, hi)
			}
			ax.place(w, cursor, size)
			cursor += size
		}
	}
}

// clamp bounds v to [lo, hi]. Unset bounds are 0; the floor is never below
// one cell. When lo > hi the minimum wins.
func clamp(v, lo, hi int) int {
	if hi > 0 && v > hi {
		v = hi
	}
	if lo < 1 {
		lo = 1
	}
	if v < lo {
		v = lo
	}
	return v
}
