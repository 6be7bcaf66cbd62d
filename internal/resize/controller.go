// pattern: Functional Core

package resize

import (
	"time"

	"twoface/internal/layout"
	"twoface/internal/logging"
)

// Controller feeds raw resize notifications through a Debouncer and runs an
// Engine pass for each resize that survives. Its boolean results are the
// "layout changed" signal: true only when a pass actually ran.
type Controller struct {
	debouncer *Debouncer
	engine    *Engine
	logger    *logging.ScopedLogger
	passes    int
	lastPass  *Pass
}

// NewController wires a debouncer to an engine.
func NewController(d *Debouncer, e *Engine, logger *logging.ScopedLogger) *Controller {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Controller{debouncer: d, engine: e, logger: logger}
}

// Record handles a raw resize notification.
func (c *Controller) Record(rows, cols int) bool {
	dims, ok := c.debouncer.Record(rows, cols)
	if !ok {
		c.logger.Debug("resize coalesced", "rows", rows, "cols", cols)
		return false
	}
	c.run(dims)
	return true
}

// Poll releases a coalesced resize once its debounce window has passed.
func (c *Controller) Poll() bool {
	dims, ok := c.debouncer.Poll()
	if !ok {
		return false
	}
	c.run(dims)
	return true
}

// Replace swaps in a window set designed for a rows x cols terminal and
// immediately lays it out for the size the engine currently holds. A
// resize still held by the debouncer is applied later as usual.
func (c *Controller) Replace(windows []*layout.Window, rows, cols int) {
	live := c.engine.Dims()
	c.engine.Reset(windows, rows, cols)
	c.run(live)
}

// Pending reports whether a coalesced resize is still waiting.
func (c *Controller) Pending() bool {
	return c.debouncer.Pending()
}

// Remaining returns how long until a pending resize can be released.
func (c *Controller) Remaining() time.Duration {
	return c.debouncer.Remaining()
}

// Engine returns the underlying engine.
func (c *Controller) Engine() *Engine {
	return c.engine
}

// Debouncer returns the underlying debouncer.
func (c *Controller) Debouncer() *Debouncer {
	return c.debouncer
}

// Passes returns how many resize passes have run.
func (c *Controller) Passes() int {
	return c.passes
}

// LastPass returns the most recent pass, if any.
func (c *Controller) LastPass() (Pass, bool) {
	if c.lastPass == nil {
		return Pass{}, false
	}
	return *c.lastPass, true
}

func (c *Controller) run(dims Dims) {
	pass := c.engine.Resize(dims.Rows, dims.Cols)
	c.passes++
	c.lastPass = &pass
	c.logger.Info("layout resized", "rows", dims.Rows, "cols", dims.Cols, "pass", c.passes)
}
