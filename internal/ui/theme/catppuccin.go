package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Gain  = lipgloss.NewStyle().Foreground(Green)
	Loss  = lipgloss.NewStyle().Foreground(Red)
)

// Signed colours a profit figure: green when positive, red when negative.
func Signed(n int64) string {
	s := fmt.Sprint(n)
	switch {
	case n > 0:
		return Gain.Render(s)
	case n < 0:
		return Loss.Render(s)
	default:
		return s
	}
}
