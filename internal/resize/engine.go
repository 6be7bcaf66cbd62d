// pattern: Functional Core

package resize

import (
	"twoface/internal/layout"
	"twoface/internal/logging"
)

// Pass summarizes one completed resize pass.
type Pass struct {
	From         Dims
	To           Dims
	HeightDeltas layout.Deltas
	WidthDeltas  layout.Deltas
}

// Engine owns the live window set and the terminal size it was last laid
// out for. It is not safe for concurrent use; callers own it from a single
// event loop.
type Engine struct {
	windows []*layout.Window
	dims    Dims
	logger  *logging.ScopedLogger
}

// NewEngine creates an engine for windows laid out on a rows x cols terminal.
func NewEngine(windows []*layout.Window, rows, cols int, logger *logging.ScopedLogger) *Engine {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Engine{
		windows: windows,
		dims:    Dims{Rows: rows, Cols: cols},
		logger:  logger,
	}
}

// Windows returns the live window set.
func (e *Engine) Windows() []*layout.Window {
	return e.windows
}

// Dims returns the terminal size the windows are currently laid out for.
func (e *Engine) Dims() Dims {
	return e.dims
}

// Reset replaces the window set with one designed for a rows x cols terminal.
func (e *Engine) Reset(windows []*layout.Window, rows, cols int) {
	e.windows = windows
	e.dims = Dims{Rows: rows, Cols: cols}
	e.logger.Debug("window set replaced", "windows", len(windows), "rows", rows, "cols", cols)
}

// Resize recomputes every window for a rows x cols terminal. The height
// phase completes before the width phase takes its own baseline, so widths
// are computed against post-height row extents.
func (e *Engine) Resize(rows, cols int) Pass {
	pass := Pass{From: e.dims, To: Dims{Rows: rows, Cols: cols}}

	heightDelta := rows - e.dims.Rows
	base := layout.Snapshot(e.windows)
	pass.HeightDeltas = layout.HeightDeltas(base, e.windows, heightDelta, e.dims.Cols)
	layout.ApplyHeights(base, e.windows, pass.HeightDeltas, e.dims.Cols)

	widthDelta := cols - e.dims.Cols
	base = layout.Snapshot(e.windows)
	pass.WidthDeltas = layout.WidthDeltas(base, e.windows, widthDelta, rows)
	layout.ApplyWidths(base, e.windows, pass.WidthDeltas, rows)

	e.dims = pass.To

	e.logger.Debug("resize pass complete",
		"from_rows", pass.From.Rows, "from_cols", pass.From.Cols,
		"to_rows", rows, "to_cols", cols,
		"height_delta", heightDelta, "width_delta", widthDelta,
		"windows", len(e.windows))
	return pass
}
