package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Catppuccin Mocha, the subset the card uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorPeach    lipgloss.Color = "#fab387"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent = colorPink
	colorBorder = colorLavender
	colorFan    = colorPeach
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	infoStyle      = lipgloss.NewStyle().Foreground(colorSubtext0)
	mediaStyle     = lipgloss.NewStyle().Background(colorSurface0).Foreground(colorAccent)
	statusBarStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(colorText).Background(colorMantle).Padding(0, 2)
)

// roundedRadius is the smallest corner radius drawn with rounded corners.
const roundedRadius = 16

func borderFor(radius float64) lipgloss.Border {
	if radius >= roundedRadius {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// fade blends c toward the background by 1-opacity.
func fade(c lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return c
	}
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bg, err := colorful.Hex(string(colorBase))
	if err != nil {
		return c
	}
	return lipgloss.Color(bg.BlendLab(fg, clamp01(opacity)).Clamped().Hex())
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
