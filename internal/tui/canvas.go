// pattern: Functional Core

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"twoface/internal/layout"
)

type paint uint8

const (
	paintNone paint = iota
	paintFrame
	paintBar
	paintText
)

// cell is one terminal cell. A zero rune marks the second half of a wide
// character and renders as nothing.
type cell struct {
	r     rune
	owner int
	paint paint
}

// canvas is a rows x cols grid windows are drawn onto in order, so later
// windows cover earlier ones where they overlap.
type canvas struct {
	rows, cols int
	cells      [][]cell
}

func newCanvas(rows, cols int) *canvas {
	c := &canvas{rows: rows, cols: cols, cells: make([][]cell, rows)}
	for i := range c.cells {
		line := make([]cell, cols)
		for j := range line {
			line[j] = cell{r: ' ', owner: -1}
		}
		c.cells[i] = line
	}
	return c
}

func (c *canvas) set(row, col int, r rune, owner int, p paint) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	c.cells[row][col] = cell{r: r, owner: owner, paint: p}
}

// text writes s at (row, col), truncated to maxWidth cells.
func (c *canvas) text(row, col, maxWidth int, s string, owner int, p paint) {
	if maxWidth <= 0 {
		return
	}
	s = ansi.Truncate(s, maxWidth, "…")
	for _, r := range s {
		w := ansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		c.set(row, col, r, owner, p)
		for i := 1; i < w; i++ {
			c.set(row, col+i, 0, owner, p)
		}
		col += w
	}
}

func (c *canvas) fill(r layout.Rect, owner int, p paint) {
	for row := r.Row; row < r.Bottom(); row++ {
		for col := r.Col; col < r.Right(); col++ {
			c.set(row, col, ' ', owner, p)
		}
	}
}

// frame draws a rounded border around r with title set into the top edge.
func (c *canvas) frame(r layout.Rect, owner int, title string) {
	c.fill(r, owner, paintText)
	top, bottom := r.Row, r.Bottom()-1
	left, right := r.Col, r.Right()-1

	for col := left + 1; col < right; col++ {
		c.set(top, col, '─', owner, paintFrame)
		c.set(bottom, col, '─', owner, paintFrame)
	}
	for row := top + 1; row < bottom; row++ {
		c.set(row, left, '│', owner, paintFrame)
		c.set(row, right, '│', owner, paintFrame)
	}
	c.set(top, left, '╭', owner, paintFrame)
	c.set(top, right, '╮', owner, paintFrame)
	c.set(bottom, left, '╰', owner, paintFrame)
	c.set(bottom, right, '╯', owner, paintFrame)

	if title != "" {
		c.text(top, left+1, r.Cols-2, " "+title+" ", owner, paintFrame)
	}
}

// render styles each run of cells sharing an owner and paint.
func (c *canvas) render(style func(owner int, p paint) lipgloss.Style) string {
	lines := make([]string, c.rows)
	var run strings.Builder
	for i, line := range c.cells {
		var sb strings.Builder
		for j := 0; j < len(line); {
			owner, p := line[j].owner, line[j].paint
			run.Reset()
			for ; j < len(line) && line[j].owner == owner && line[j].paint == p; j++ {
				if line[j].r != 0 {
					run.WriteRune(line[j].r)
				}
			}
			if owner < 0 || p == paintNone {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(style(owner, p).Render(run.String()))
			}
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
