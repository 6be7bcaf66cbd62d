// pattern: Functional Core

package resize

import "time"

// DefaultDebounceWindow is the minimum spacing between two processed resizes.
const DefaultDebounceWindow = 100 * time.Millisecond

// Dims is a terminal size in cells.
type Dims struct {
	Rows int
	Cols int
}

// Debouncer coalesces bursts of resize notifications. Within one debounce
// window only the most recent dimensions survive; earlier ones are dropped.
type Debouncer struct {
	window  time.Duration
	now     func() time.Time
	last    time.Time // zero until the first resize is processed
	pending *Dims
}

// NewDebouncer creates a debouncer using the wall clock. A non-positive
// window falls back to DefaultDebounceWindow.
func NewDebouncer(window time.Duration) *Debouncer {
	return NewDebouncerWithClock(window, time.Now)
}

// NewDebouncerWithClock creates a debouncer reading time from now.
func NewDebouncerWithClock(window time.Duration, now func() time.Time) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{window: window, now: now}
}

// Record notes a raw resize. It returns the dimensions and true when they
// should be processed right away; otherwise they are held as pending.
func (d *Debouncer) Record(rows, cols int) (Dims, bool) {
	now := d.now()
	if d.elapsed(now) {
		d.last = now
		d.pending = nil
		return Dims{Rows: rows, Cols: cols}, true
	}
	d.pending = &Dims{Rows: rows, Cols: cols}
	return Dims{}, false
}

// Poll releases the pending dimensions once the debounce window has passed
// since the last processed resize. Call it once per event-loop tick.
func (d *Debouncer) Poll() (Dims, bool) {
	if d.pending == nil {
		return Dims{}, false
	}
	now := d.now()
	if !d.elapsed(now) {
		return Dims{}, false
	}
	dims := *d.pending
	d.pending = nil
	d.last = now
	return dims, true
}

// Pending reports whether a resize is waiting to be released.
func (d *Debouncer) Pending() bool {
	return d.pending != nil
}

// Window returns the debounce window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// SetWindow changes the debounce window; non-positive values are ignored.
func (d *Debouncer) SetWindow(window time.Duration) {
	if window > 0 {
		d.window = window
	}
}

// Remaining returns how long until pending dimensions become releasable.
func (d *Debouncer) Remaining() time.Duration {
	if d.last.IsZero() {
		return 0
	}
	left := d.window - d.now().Sub(d.last)
	if left < 0 {
		return 0
	}
	return left
}

func (d *Debouncer) elapsed(now time.Time) bool {
	return d.last.IsZero() || now.Sub(d.last) >= d.window
}
