package resize

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for debounce tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDebouncer_BurstKeepsLast(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncerWithClock(100*time.Millisecond, clock.Now)

	// Cold start processes immediately.
	dims, ok := d.Record(80, 24)
	if !ok || dims != (Dims{Rows: 80, Cols: 24}) {
		t.Fatalf("first Record() = %v, %v; want {80 24}, true", dims, ok)
	}

	clock.Advance(5 * time.Millisecond)
	if _, ok := d.Record(81, 24); ok {
		t.Error("second Record() processed inside debounce window")
	}
	clock.Advance(5 * time.Millisecond)
	if _, ok := d.Record(82, 25); ok {
		t.Error("third Record() processed inside debounce window")
	}

	// Window has not elapsed yet.
	if _, ok := d.Poll(); ok {
		t.Error("Poll() released before debounce window elapsed")
	}

	clock.Advance(90 * time.Millisecond)
	dims, ok = d.Poll()
	if !ok {
		t.Fatal("Poll() after debounce window returned nothing")
	}
	if dims != (Dims{Rows: 82, Cols: 25}) {
		t.Errorf("Poll() = %v, want {82 25}", dims)
	}

	// Pending is cleared once released.
	if d.Pending() {
		t.Error("Pending() = true after Poll released")
	}
	if _, ok := d.Poll(); ok {
		t.Error("second Poll() released again")
	}
}

func TestDebouncer_AtMostOneProcessedPerWindow(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncerWithClock(100*time.Millisecond, clock.Now)

	processed := 0
	for i := 0; i < 50; i++ {
		if _, ok := d.Record(24+i, 80+i); ok {
			processed++
		}
		clock.Advance(time.Millisecond)
	}
	if processed != 1 {
		t.Errorf("processed = %d, want 1", processed)
	}

	clock.Advance(100 * time.Millisecond)
	dims, ok := d.Poll()
	if !ok || dims != (Dims{Rows: 73, Cols: 129}) {
		t.Errorf("Poll() = %v, %v; want {73 129}, true", dims, ok)
	}
}

func TestDebouncer_RecordAfterWindowProcessesImmediately(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncerWithClock(100*time.Millisecond, clock.Now)

	d.Record(24, 80)
	clock.Advance(50 * time.Millisecond)
	d.Record(25, 80) // coalesced

	clock.Advance(50 * time.Millisecond)
	dims, ok := d.Record(30, 90)
	if !ok || dims != (Dims{Rows: 30, Cols: 90}) {
		t.Fatalf("Record() = %v, %v; want {30 90}, true", dims, ok)
	}
	// The stale pending value must not resurface.
	clock.Advance(200 * time.Millisecond)
	if dims, ok := d.Poll(); ok {
		t.Errorf("Poll() = %v, want nothing", dims)
	}
}

func TestDebouncer_PollWithoutPending(t *testing.T) {
	d := NewDebouncer(0)
	if _, ok := d.Poll(); ok {
		t.Error("Poll() on fresh debouncer returned a value")
	}
	if d.Window() != DefaultDebounceWindow {
		t.Errorf("Window() = %v, want %v", d.Window(), DefaultDebounceWindow)
	}
}

func TestDebouncer_Remaining(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncerWithClock(100*time.Millisecond, clock.Now)

	if got := d.Remaining(); got != 0 {
		t.Errorf("Remaining() before first resize = %v, want 0", got)
	}
	d.Record(24, 80)
	clock.Advance(30 * time.Millisecond)
	if got := d.Remaining(); got != 70*time.Millisecond {
		t.Errorf("Remaining() = %v, want 70ms", got)
	}
	clock.Advance(time.Second)
	if got := d.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0", got)
	}
}

func TestDebouncer_SetWindow(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncerWithClock(100*time.Millisecond, clock.Now)

	d.SetWindow(-1)
	if d.Window() != 100*time.Millisecond {
		t.Errorf("SetWindow(-1) changed window to %v", d.Window())
	}

	d.SetWindow(20 * time.Millisecond)
	d.Record(24, 80)
	clock.Advance(20 * time.Millisecond)
	if _, ok := d.Record(25, 80); !ok {
		t.Error("Record() after shortened window was not processed")
	}
}
