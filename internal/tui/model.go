package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"twoface/internal/config"
	"twoface/internal/layout"
	"twoface/internal/logging"
	"twoface/internal/resize"
)

// StatusLevel indicates the type of status message.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusError
)

func (l StatusLevel) String() string {
	switch l {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "info"
	}
}

// Model represents the TUI application state.
type Model struct {
	width  int
	height int
	styles *Styles
	keys   keyMap

	cfg        *config.Config
	configPath string
	controller *resize.Controller
	logger     *logging.ScopedLogger
	logEntries <-chan logging.LogEntry

	// tickPending is set while a resizeTickMsg is scheduled.
	tickPending bool

	problems     []layout.Problem
	problemsOpen bool

	statusMessage string
	statusLevel   StatusLevel
}

// NewModel creates a TUI model for cfg. logEntries may be nil; when set, the
// newest entry is shown in one-line windows.
func NewModel(cfg *config.Config, configPath string, logs logging.LoggerProvider, logEntries <-chan logging.LogEntry) Model {
	return newModelWithClock(cfg, configPath, logs, logEntries, time.Now)
}

func newModelWithClock(cfg *config.Config, configPath string, logs logging.LoggerProvider, logEntries <-chan logging.LogEntry, now func() time.Time) Model {
	debouncer := resize.NewDebouncerWithClock(cfg.Resize.DebounceWindow(), now)
	engine := resize.NewEngine(cfg.Layout.Build(), cfg.Layout.Rows, cfg.Layout.Cols, logs.For("resize"))

	m := Model{
		styles:     NewStyles(cfg.Theme),
		keys:       defaultKeyMap(),
		cfg:        cfg,
		configPath: configPath,
		controller: resize.NewController(debouncer, engine, logs.For("resize")),
		logger:     logs.For("tui"),
		logEntries: logEntries,
	}
	m.logger.Debug("tui initialized", "windows", len(engine.Windows()), "theme", cfg.Theme)
	return m
}

// Init returns the initial command to run.
func (m Model) Init() tea.Cmd {
	return m.consumeLogEntries()
}

// Controller returns the resize controller driving the layout.
func (m Model) Controller() *resize.Controller {
	return m.controller
}

// consumeLogEntries blocks for the next entry, then takes whatever else is
// already buffered so a burst of logs costs one redraw.
func (m Model) consumeLogEntries() tea.Cmd {
	if m.logEntries == nil {
		return nil
	}
	ch := m.logEntries
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		entries := []logging.LogEntry{entry}
		for {
			select {
			case e, ok := <-ch:
				if !ok {
					return logEntriesMsg{entries: entries}
				}
				entries = append(entries, e)
			default:
				return logEntriesMsg{entries: entries}
			}
		}
	}
}

// scheduleResizeTick arms a tick for when the held resize becomes releasable.
func (m *Model) scheduleResizeTick() tea.Cmd {
	if m.tickPending || !m.controller.Pending() {
		return nil
	}
	m.tickPending = true
	wait := m.controller.Remaining()
	if wait <= 0 {
		wait = time.Millisecond
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return resizeTickMsg{time: t}
	})
}

func (m *Model) setStatus(level StatusLevel, msg string) {
	m.statusLevel = level
	m.statusMessage = msg
}

// relaid refreshes derived state after a resize pass ran.
func (m *Model) relaid() {
	dims := m.controller.Engine().Dims()
	m.problems = layout.Check(m.controller.Engine().Windows(), dims.Rows, dims.Cols)
	if len(m.problems) > 0 {
		m.logger.Warn("layout does not tile terminal", "problems", len(m.problems))
	}
}
