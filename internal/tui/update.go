// pattern: Imperative Shell

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"twoface/internal/config"
	"twoface/internal/events"
	"twoface/internal/logging"
)

// resizeTickMsg wakes the model to release a debounced resize.
type resizeTickMsg struct {
	time time.Time
}

// logEntriesMsg delivers log entries from the logging channel.
type logEntriesMsg struct {
	entries []logging.LogEntry
}

// configLoadedMsg carries the result of a manual reload.
type configLoadedMsg struct {
	cfg config.Config
	err error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.controller.Record(msg.Height, msg.Width) {
			m.relaid()
			return m, nil
		}
		cmd := m.scheduleResizeTick()
		return m, cmd

	case resizeTickMsg:
		m.tickPending = false
		if m.controller.Poll() {
			m.relaid()
		}
		cmd := m.scheduleResizeTick()
		return m, cmd

	case events.ConfigReloadedMsg:
		return m.applyConfig(msg.Config), nil

	case configLoadedMsg:
		if msg.err != nil {
			m.logger.Error("config reload failed", "error", msg.err)
			m.setStatus(StatusError, "reload failed: "+msg.err.Error())
			return m, nil
		}
		return m.applyConfig(msg.cfg), nil

	case logEntriesMsg:
		for _, entry := range msg.entries {
			level := StatusInfo
			if entry.Level == "ERROR" || entry.Level == "WARN" {
				level = StatusError
			}
			m.setStatus(level, entry.StatusLine())
		}
		return m, m.consumeLogEntries()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Debug("quit requested", "key", msg.String())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.problemsOpen = false
		if m.statusLevel == StatusError {
			m.setStatus(StatusInfo, "")
		}
		return m, nil

	case key.Matches(msg, m.keys.Problems):
		m.problemsOpen = !m.problemsOpen
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		path := m.configPath
		m.logger.Info("reloading config", "path", path)
		return m, func() tea.Msg {
			cfg, err := config.LoadFrom(path)
			return configLoadedMsg{cfg: cfg, err: err}
		}
	}
	return m, nil
}

// applyConfig swaps in a new config and lays the new window set out for the
// current terminal size.
func (m Model) applyConfig(cfg config.Config) Model {
	m.cfg = &cfg
	m.styles = NewStyles(cfg.Theme)
	m.controller.Debouncer().SetWindow(cfg.Resize.DebounceWindow())
	if m.width == 0 || m.height == 0 {
		// No size reported yet; the first WindowSizeMsg will lay it out.
		m.controller.Engine().Reset(cfg.Layout.Build(), cfg.Layout.Rows, cfg.Layout.Cols)
	} else {
		m.controller.Replace(cfg.Layout.Build(), cfg.Layout.Rows, cfg.Layout.Cols)
	}
	m.relaid()
	m.setStatus(StatusSuccess, fmt.Sprintf("config applied: %d windows", len(cfg.Layout.Windows)))
	return m
}
