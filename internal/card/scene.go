package card

import (
	"time"

	"github.com/jask/autolayout/internal/descriptor"
	"github.com/jask/autolayout/internal/layout"
	"github.com/jask/autolayout/internal/presence"
	"github.com/jask/autolayout/internal/steps"
)

// ElementView is one animatable element as it appears at an instant.
type ElementView struct {
	ID     string
	Box    layout.Rect
	Styles map[string]float64
}

// Scene is everything a renderer needs for one frame.
type Scene struct {
	State    steps.State
	Viewport layout.Size
	Content  Content
	Elements []ElementView
	Fan      []presence.Visual
	Info     descriptor.Flow
}

// Element returns the view of the element with the given id.
func (s Scene) Element(id string) (ElementView, bool) {
	for _, e := range s.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return ElementView{}, false
}

// Style returns a style value of an element, or 0 if it is not tracked.
func (s Scene) Style(id, key string) float64 {
	e, ok := s.Element(id)
	if !ok {
		return 0
	}
	return e.Styles[key]
}

// Scene captures the interim visual state at now.
func (c *Card) Scene(now time.Time) Scene {
	handles := c.tree.Handles()
	elems := make([]ElementView, 0, len(handles))
	for _, h := range handles {
		if !h.Measured() {
			continue
		}
		styles := make(map[string]float64)
		for _, k := range h.StyleKeys() {
			styles[k], _ = h.Style(k, now)
		}
		elems = append(elems, ElementView{ID: h.ID, Box: h.VisualBox(now), Styles: styles})
	}
	return Scene{
		State:    c.machine.Current(),
		Viewport: c.viewport,
		Content:  c.tree.Content(),
		Elements: elems,
		Fan:      c.presence.VisualsAt(now, c.tree.fanAnchor(now)),
		Info:     c.current.Info.Flow,
	}
}
