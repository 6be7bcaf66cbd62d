package resize

import (
	"testing"
	"time"

	"twoface/internal/layout"
	"twoface/internal/logging"
)

func newTestController(t *testing.T) (*Controller, *fakeClock, *logging.TestLogManager, *layout.Window, *layout.Window) {
	t.Helper()
	clock := newFakeClock()
	a := pane("A", 0, 0, 30, 80)
	b := pane("B", 30, 0, 30, 80)
	lm := logging.NewTestLogManager(64)
	t.Cleanup(func() { _ = lm.Close() })

	e := NewEngine([]*layout.Window{a, b}, 60, 80, lm.For("resize"))
	d := NewDebouncerWithClock(100*time.Millisecond, clock.Now)
	return NewController(d, e, lm.For("resize")), clock, lm, a, b
}

func TestController_FirstResizeRunsImmediately(t *testing.T) {
	c, _, _, a, b := newTestController(t)

	if !c.Record(70, 80) {
		t.Fatal("Record() = false on cold start, want true")
	}
	if c.Passes() != 1 {
		t.Errorf("Passes() = %d, want 1", c.Passes())
	}
	if a.Rows+b.Rows != 70 {
		t.Errorf("rows total = %d, want 70", a.Rows+b.Rows)
	}
	pass, ok := c.LastPass()
	if !ok || pass.To != (Dims{Rows: 70, Cols: 80}) {
		t.Errorf("LastPass() = %+v, %v; want To {70 80}", pass, ok)
	}
}

func TestController_BurstRunsOncePerWindow(t *testing.T) {
	c, clock, _, a, b := newTestController(t)

	c.Record(61, 80)
	for i := 0; i < 5; i++ {
		clock.Advance(10 * time.Millisecond)
		if c.Record(62+i, 80) {
			t.Fatalf("Record() #%d ran a pass inside the debounce window", i)
		}
	}
	if !c.Pending() {
		t.Fatal("Pending() = false after coalesced burst")
	}
	if c.Poll() {
		t.Error("Poll() ran a pass before the window elapsed")
	}
	if c.Remaining() != 50*time.Millisecond {
		t.Errorf("Remaining() = %v, want 50ms", c.Remaining())
	}

	clock.Advance(50 * time.Millisecond)
	if !c.Poll() {
		t.Fatal("Poll() = false after window elapsed")
	}
	if c.Passes() != 2 {
		t.Errorf("Passes() = %d, want 2", c.Passes())
	}
	// Only the last size of the burst is applied.
	if a.Rows+b.Rows != 66 {
		t.Errorf("rows total = %d, want 66", a.Rows+b.Rows)
	}
	if c.Poll() {
		t.Error("second Poll() ran a pass with nothing pending")
	}
}

func TestController_NoPassBeforeFirstResize(t *testing.T) {
	c, _, _, _, _ := newTestController(t)

	if c.Poll() {
		t.Error("Poll() = true with nothing recorded")
	}
	if _, ok := c.LastPass(); ok {
		t.Error("LastPass() reported a pass before any ran")
	}
}

func TestController_LogsPasses(t *testing.T) {
	c, clock, lm, _, _ := newTestController(t)

	c.Record(70, 90)
	clock.Advance(time.Millisecond)
	c.Record(71, 90)

	var resized, coalesced int
	for _, e := range lm.Drain() {
		if e.Scope != "resize" {
			t.Errorf("entry scope = %q, want resize", e.Scope)
		}
		switch e.Message {
		case "layout resized":
			resized++
			if e.Fields["pass"] != float64(1) {
				t.Errorf("pass field = %v, want 1", e.Fields["pass"])
			}
		case "resize coalesced":
			coalesced++
		}
	}
	if resized != 1 || coalesced != 1 {
		t.Errorf("resized = %d, coalesced = %d; want 1, 1", resized, coalesced)
	}
}

func TestController_ReplaceLaysOutForLiveSize(t *testing.T) {
	c, _, _, _, _ := newTestController(t)
	c.Record(70, 100)

	top := pane("top", 0, 0, 12, 40)
	bottom := pane("bottom", 12, 0, 12, 40)
	c.Replace([]*layout.Window{top, bottom}, 24, 40)

	if top.Rows+bottom.Rows != 70 {
		t.Errorf("rows total = %d, want 70", top.Rows+bottom.Rows)
	}
	if top.Cols != 100 || bottom.Cols != 100 {
		t.Errorf("cols = %d, %d; want 100, 100", top.Cols, bottom.Cols)
	}
	if c.Passes() != 2 {
		t.Errorf("Passes() = %d, want 2", c.Passes())
	}
	if got := c.Engine().Windows(); len(got) != 2 || got[0] != top {
		t.Errorf("Engine().Windows() = %v, want the replacement set", got)
	}
}
