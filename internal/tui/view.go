// pattern: Imperative Shell

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"twoface/internal/layout"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Problems list is a modal overlay
	if m.problemsOpen {
		return m.renderProblems()
	}

	windows := m.controller.Engine().Windows()
	if len(windows) == 0 {
		return m.renderEmpty()
	}

	c := newCanvas(m.height, m.width)
	for i, w := range windows {
		m.drawWindow(c, i, w)
	}
	return c.render(m.cellStyle)
}

func (m Model) drawWindow(c *canvas, i int, w *layout.Window) {
	r := w.Rect()
	if r.Rows < 3 || r.Cols < 3 {
		c.fill(r, i, paintBar)
		c.text(r.Row, r.Col+1, r.Cols-2, m.barText(w), i, paintBar)
		return
	}

	c.frame(r, i, w.ID)
	inner := r.Cols - 4
	c.text(r.Row+1, r.Col+2, inner, fmt.Sprintf("%d×%d at %d,%d", r.Rows, r.Cols, r.Row, r.Col), i, paintText)
	if r.Rows >= 4 {
		if note := constraintNote(w); note != "" {
			c.text(r.Row+2, r.Col+2, inner, note, i, paintText)
		}
	}
}

// barText is what a window too small to frame shows: its ID, then the
// latest status or the key help.
func (m Model) barText(w *layout.Window) string {
	detail := m.statusMessage
	if detail == "" {
		detail = m.keys.helpLine()
	}
	return w.ID + " │ " + detail
}

func (m Model) cellStyle(owner int, p paint) lipgloss.Style {
	switch p {
	case paintFrame:
		return m.styles.FrameStyle(owner)
	case paintBar:
		if m.statusLevel == StatusError {
			return m.styles.BarStyle(owner).Foreground(lipgloss.Color(m.styles.flavor.Red().Hex))
		}
		return m.styles.BarStyle(owner)
	default:
		return m.styles.MutedStyle()
	}
}

func constraintNote(w *layout.Window) string {
	var parts []string
	switch {
	case w.Fixed():
		parts = append(parts, "fixed")
	case w.StaticHeight:
		parts = append(parts, "static height")
	case w.StaticWidth:
		parts = append(parts, "static width")
	}
	if w.MinRows > 0 || w.MaxRows > 0 {
		parts = append(parts, "rows "+bounds(w.MinRows, w.MaxRows))
	}
	if w.MinCols > 0 || w.MaxCols > 0 {
		parts = append(parts, "cols "+bounds(w.MinCols, w.MaxCols))
	}
	return strings.Join(parts, " · ")
}

func bounds(lo, hi int) string {
	switch {
	case hi == 0:
		return fmt.Sprintf("≥%d", lo)
	case lo == 0:
		return fmt.Sprintf("≤%d", hi)
	default:
		return fmt.Sprintf("%d..%d", lo, hi)
	}
}

// renderProblems renders the geometry problems as a centered modal.
func (m Model) renderProblems() string {
	title := m.styles.TitleStyle().Render("Geometry problems")

	var body string
	if len(m.problems) == 0 {
		body = m.styles.InfoStyle().Render("Windows tile the terminal exactly.")
	} else {
		lines := make([]string, len(m.problems))
		for i, p := range m.problems {
			lines[i] = m.styles.WarnStyle().Render("• " + p.String())
		}
		body = strings.Join(lines, "\n")
	}
	help := m.styles.HelpStyle().Render("esc/p: close")

	box := m.styles.BoxStyle().Render(lipgloss.JoinVertical(lipgloss.Left, title, body, help))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderEmpty() string {
	title := m.styles.TitleStyle().Render("No windows configured")
	help := m.styles.HelpStyle().Render(m.keys.helpLine())
	box := m.styles.BoxStyle().Render(lipgloss.JoinVertical(lipgloss.Left, title, help))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
