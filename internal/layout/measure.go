package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Measurer reports the natural size of a run of text.
type Measurer interface {
	MeasureText(text string, fontSize float64) Size
}

// MonoMeasurer measures text as a monospaced face: each display column is
// Advance*fontSize wide and each line LineHeight*fontSize tall.
type MonoMeasurer struct {
	Advance    float64
	LineHeight float64
}

// DefaultMeasurer approximates a 16px body face.
var DefaultMeasurer Measurer = MonoMeasurer{Advance: 0.6, LineHeight: 1.25}

const defaultFontSize = 16

// MeasureText implements Measurer.
func (m MonoMeasurer) MeasureText(text string, fontSize float64) Size {
	if fontSize <= 0 {
		fontSize = defaultFontSize
	}
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > widest {
			widest = w
		}
	}
	return Size{
		Width:  float64(widest) * fontSize * m.Advance,
		Height: float64(len(lines)) * fontSize * m.LineHeight,
	}
}
