package tui

import (
	"testing"
	"time"

	"twoface/internal/config"
	"twoface/internal/logging"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T) (Model, *fakeClock, *logging.TestLogManager) {
	t.Helper()
	cfg := config.DefaultConfig()
	clock := &fakeClock{t: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	lm := logging.NewTestLogManager(256)
	t.Cleanup(func() { _ = lm.Close() })
	return newModelWithClock(&cfg, "", lm, nil, clock.Now), clock, lm
}

func TestStatusLevel_String(t *testing.T) {
	tests := []struct {
		level StatusLevel
		want  string
	}{
		{StatusInfo, "info"},
		{StatusSuccess, "success"},
		{StatusError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("StatusLevel.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewModel_BuildsEngineFromConfig(t *testing.T) {
	m, _, lm := newTestModel(t)

	engine := m.Controller().Engine()
	if len(engine.Windows()) != 3 {
		t.Errorf("engine has %d windows, want 3", len(engine.Windows()))
	}
	if d := engine.Dims(); d.Rows != 24 || d.Cols != 80 {
		t.Errorf("engine dims = %v, want {24 80}", d)
	}
	if m.Controller().Debouncer().Window() != 100*time.Millisecond {
		t.Errorf("debounce window = %v, want 100ms", m.Controller().Debouncer().Window())
	}

	var found bool
	for _, e := range lm.Drain() {
		if e.Scope == "tui" && e.Message == "tui initialized" {
			found = true
		}
	}
	if !found {
		t.Error("expected a 'tui initialized' log entry")
	}
}

func TestModel_InitWithoutLogChannel(t *testing.T) {
	m, _, _ := newTestModel(t)
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() without a log channel should return nil")
	}
}

func TestModel_ConsumeLogEntriesBatches(t *testing.T) {
	cfg := config.DefaultConfig()
	ch := make(chan logging.LogEntry, 8)
	for _, msg := range []string{"one", "two", "three"} {
		ch <- logging.LogEntry{Scope: "app", Message: msg}
	}
	m := NewModel(&cfg, "", logging.NewTestLogManager(8), ch)

	msg := m.Init()()
	batch, ok := msg.(logEntriesMsg)
	if !ok {
		t.Fatalf("Init() cmd returned %T, want logEntriesMsg", msg)
	}
	if len(batch.entries) != 3 || batch.entries[2].Message != "three" {
		t.Errorf("batch = %+v, want three entries in order", batch.entries)
	}

	close(ch)
	if msg := m.consumeLogEntries()(); msg != nil {
		t.Errorf("closed channel cmd returned %v, want nil", msg)
	}
}
