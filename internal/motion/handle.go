package motion

import (
	"maps"
	"slices"
	"time"

	"github.com/jask/autolayout/internal/layout"
)

// Handle tracks one layout-animatable element: its committed layout box and
// the interpolations currently moving it.
type Handle struct {
	ID string

	box      layout.Rect
	measured bool

	invert Transform
	flip   *Tween

	styles map[string]Tween
}

// NewHandle creates an unmeasured handle.
func NewHandle(id string) *Handle {
	return &Handle{ID: id, invert: Identity, styles: make(map[string]Tween)}
}

// Box returns the committed layout box.
func (h *Handle) Box() layout.Rect {
	return h.box
}

// Measured reports whether a layout box has ever been committed.
func (h *Handle) Measured() bool {
	return h.measured
}

// Commit records the element's new layout box without touching running
// animations. The visual box jumps to the new box unless Play follows.
func (h *Handle) Commit(box layout.Rect) {
	h.box = box
	h.measured = true
}

// Transform returns the compensating transform at now.
func (h *Handle) Transform(now time.Time) Transform {
	if h.flip == nil {
		return Identity
	}
	return h.invert.Mix(h.flip.Progress(now))
}

// VisualBox returns where the element appears on screen at now.
func (h *Handle) VisualBox(now time.Time) layout.Rect {
	return h.Transform(now).Apply(h.box)
}

// Style returns the interpolated value of a style field at now.
func (h *Handle) Style(key string, now time.Time) (float64, bool) {
	tw, ok := h.styles[key]
	if !ok {
		return 0, false
	}
	return tw.Value(now), true
}

// StyleKeys returns the tracked style fields in sorted order.
func (h *Handle) StyleKeys() []string {
	return slices.Sorted(maps.Keys(h.styles))
}

// SetStyle settles a style field at v, cancelling any tween on it.
func (h *Handle) SetStyle(key string, v float64) {
	h.styles[key] = Still(v)
}

// Snap cancels every running interpolation. Style fields settle at their
// targets and the element shows its committed box.
func (h *Handle) Snap() {
	h.flip = nil
	h.invert = Identity
	for k, tw := range h.styles {
		h.styles[k] = Still(tw.To)
	}
}

// Settled reports whether nothing is moving at now.
func (h *Handle) Settled(now time.Time) bool {
	if h.flip != nil && !h.flip.Done(now) {
		return false
	}
	for _, tw := range h.styles {
		if !tw.Done(now) {
			return false
		}
	}
	return true
}

// prune drops interpolations that have finished by now.
func (h *Handle) prune(now time.Time) {
	if h.flip != nil && h.flip.Done(now) {
		h.flip = nil
		h.invert = Identity
	}
	for k, tw := range h.styles {
		if tw.Duration > 0 && tw.Done(now) {
			h.styles[k] = Still(tw.To)
		}
	}
}

func (h *Handle) styleValues(now time.Time) map[string]float64 {
	out := make(map[string]float64, len(h.styles))
	for k, tw := range h.styles {
		out[k] = tw.Value(now)
	}
	return out
}

func (h *Handle) play(invert Transform, tw Tween) {
	h.invert = invert
	h.flip = &tw
}
