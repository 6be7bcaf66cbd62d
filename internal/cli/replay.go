// pattern: Imperative Shell
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"twoface/internal/config"
	"twoface/internal/layout"
	"twoface/internal/resize"
)

// Script is a timed sequence of raw resize notifications.
type Script struct {
	DebounceMS int           `yaml:"debounce_ms"`
	Events     []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one resize notification at AtMS milliseconds after start.
type ScriptEvent struct {
	AtMS int `yaml:"at_ms"`
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LoadScript reads and validates a replay script.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, fmt.Errorf("invalid script %s: %w", path, err)
	}
	return s, nil
}

func (s Script) Validate() error {
	var errs []error
	if len(s.Events) == 0 {
		errs = append(errs, errors.New("no events"))
	}
	if s.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("debounce_ms must not be negative, got %d", s.DebounceMS))
	}
	for i, e := range s.Events {
		if e.AtMS < 0 {
			errs = append(errs, fmt.Errorf("event %d: at_ms must not be negative", i))
		}
		if e.Rows <= 0 || e.Cols <= 0 {
			errs = append(errs, fmt.Errorf("event %d: size must be positive, got %dx%d", i, e.Rows, e.Cols))
		}
	}
	return errors.Join(errs...)
}

// simClock is the replay's simulated time source.
type simClock struct {
	start time.Time
	now   time.Time
}

func newSimClock() *simClock {
	start := time.Unix(0, 0)
	return &simClock{start: start, now: start}
}

func (c *simClock) Now() time.Time { return c.now }

func (c *simClock) Set(t time.Time) {
	if t.After(c.now) {
		c.now = t
	}
}

func (c *simClock) Elapsed() time.Duration { return c.now.Sub(c.start) }

// replayResult is one resize pass the replay ran.
type replayResult struct {
	At   time.Duration
	Pass resize.Pass
}

// runReplay feeds the script through a Controller on a simulated clock.
// Between events the controller is polled at the instant a held resize
// becomes releasable, as an event loop ticking continuously would.
func runReplay(w io.Writer, cfg config.Config, script Script, verbose bool) error {
	results, windows := replay(cfg, script)

	for _, r := range results {
		fmt.Fprintf(w, "t=%-6s %dx%d -> %dx%d\n", r.At, r.Pass.From.Rows, r.Pass.From.Cols, r.Pass.To.Rows, r.Pass.To.Cols)
		if verbose {
			fmt.Fprintln(w, renderPass(windows, r.Pass))
		}
	}
	fmt.Fprintf(w, "%d events, %d passes\n", len(script.Events), len(results))

	if !verbose {
		fmt.Fprintln(w, renderGeometry(windows))
	}
	if len(results) > 0 {
		last := results[len(results)-1].Pass.To
		writeProblems(w, layout.Check(windows, last.Rows, last.Cols))
	}
	return nil
}

func replay(cfg config.Config, script Script) ([]replayResult, []*layout.Window) {
	window := cfg.Resize.DebounceWindow()
	if script.DebounceMS > 0 {
		window = time.Duration(script.DebounceMS) * time.Millisecond
	}

	events := slices.Clone(script.Events)
	slices.SortStableFunc(events, func(a, b ScriptEvent) int { return a.AtMS - b.AtMS })

	clock := newSimClock()
	windows := cfg.Layout.Build()
	engine := resize.NewEngine(windows, cfg.Layout.Rows, cfg.Layout.Cols, nil)
	ctrl := resize.NewController(resize.NewDebouncerWithClock(window, clock.Now), engine, nil)

	var results []replayResult
	record := func() {
		pass, _ := ctrl.LastPass()
		results = append(results, replayResult{At: clock.Elapsed(), Pass: pass})
	}
	// flushUntil releases a held resize if its window ends before deadline.
	flushUntil := func(deadline time.Time) {
		if !ctrl.Pending() {
			return
		}
		release := clock.Now().Add(ctrl.Remaining())
		if release.After(deadline) {
			return
		}
		clock.Set(release)
		if ctrl.Poll() {
			record()
		}
	}

	for _, e := range events {
		at := clock.start.Add(time.Duration(e.AtMS) * time.Millisecond)
		flushUntil(at)
		clock.Set(at)
		if ctrl.Record(e.Rows, e.Cols) {
			record()
		}
	}
	if ctrl.Pending() {
		clock.Set(clock.Now().Add(ctrl.Remaining()))
		if ctrl.Poll() {
			record()
		}
	}
	return results, windows
}
