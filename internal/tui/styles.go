package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	flavor catppuccin.Flavor
}

func NewStyles(themeName string) *Styles {
	flavor := flavorFromName(themeName)
	return &Styles{flavor: flavor}
}

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	case "mocha":
		return catppuccin.Mocha
	default:
		return catppuccin.Mocha
	}
}

// accents are the frame colors windows cycle through, in window order.
func (s *Styles) accents() []catppuccin.Color {
	return []catppuccin.Color{
		s.flavor.Mauve(),
		s.flavor.Teal(),
		s.flavor.Peach(),
		s.flavor.Blue(),
		s.flavor.Green(),
		s.flavor.Pink(),
		s.flavor.Yellow(),
		s.flavor.Sky(),
	}
}

// FrameStyle colors the border and title of the i-th window.
func (s *Styles) FrameStyle(i int) lipgloss.Style {
	accents := s.accents()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(accents[i%len(accents)].Hex))
}

// BarStyle fills windows too small to frame.
func (s *Styles) BarStyle(i int) lipgloss.Style {
	accents := s.accents()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Base().Hex)).
		Background(lipgloss.Color(accents[i%len(accents)].Hex))
}

func (s *Styles) InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Text().Hex))
}

func (s *Styles) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Overlay0().Hex))
}

func (s *Styles) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(s.flavor.Mauve().Hex)).
		MarginBottom(1)
}

func (s *Styles) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Overlay0().Hex)).
		MarginTop(1)
}

func (s *Styles) BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.flavor.Surface1().Hex)).
		Padding(1, 2)
}

func (s *Styles) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Red().Hex)).
		Bold(true)
}

func (s *Styles) WarnStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Yellow().Hex))
}
