package motion

import (
	"log/slog"
	"time"

	"github.com/jask/autolayout/internal/layout"
)

// Snapshot is the visual state of a set of handles at one instant.
type Snapshot struct {
	At     time.Time
	Boxes  map[string]layout.Rect
	Styles map[string]map[string]float64
}

// Targets maps handle ID to the resolved style values of the next layout.
type Targets map[string]map[string]float64

// Result reports what Play did with each handle.
type Result struct {
	Animated []string
	Snapped  []string
}

// Engine plays FLIP transitions with one fixed timing.
type Engine struct {
	timing Timing
	log    *slog.Logger
}

// NewEngine creates an engine. A nil logger uses slog.Default.
func NewEngine(timing Timing, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{timing: timing, log: log}
}

// Timing returns the engine's timing.
func (e *Engine) Timing() Timing {
	return e.timing
}

// Capture records the visual box and style values of every measured handle.
// It must run for all handles before any new layout is committed.
func (e *Engine) Capture(handles []*Handle, now time.Time) Snapshot {
	snap := Snapshot{
		At:     now,
		Boxes:  make(map[string]layout.Rect, len(handles)),
		Styles: make(map[string]map[string]float64, len(handles)),
	}
	for _, h := range handles {
		if !h.Measured() {
			continue
		}
		snap.Boxes[h.ID] = h.VisualBox(now)
		snap.Styles[h.ID] = h.styleValues(now)
	}
	return snap
}

// Play animates every handle from its captured box in first to its
// committed box, and every style field in targets from its captured value
// to the target. Running interpolations are replaced. Handles absent from
// first cannot be inverted and snap to their committed box.
func (e *Engine) Play(now time.Time, first Snapshot, handles []*Handle, targets Targets) Result {
	var res Result
	for _, h := range handles {
		prev, ok := first.Boxes[h.ID]
		if !ok {
			h.Snap()
			for k, v := range targets[h.ID] {
				h.SetStyle(k, v)
			}
			res.Snapped = append(res.Snapped, h.ID)
			e.log.Debug("no previous box, snapping", "element", h.ID)
			continue
		}

		inv, ok := Invert(prev, h.Box())
		switch {
		case !ok:
			h.Snap()
			res.Snapped = append(res.Snapped, h.ID)
			e.log.Debug("empty layout box, snapping", "element", h.ID)
		case inv.IsIdentity():
			h.Snap()
		default:
			h.play(inv, e.tween(0, 1, now))
			res.Animated = append(res.Animated, h.ID)
		}

		captured := first.Styles[h.ID]
		for k, to := range targets[h.ID] {
			from, had := captured[k]
			if !had || !ok {
				h.SetStyle(k, to)
				continue
			}
			h.styles[k] = e.tween(from, to, now)
		}
	}
	return res
}

// Animating reports whether any handle is still moving at now.
func (e *Engine) Animating(handles []*Handle, now time.Time) bool {
	for _, h := range handles {
		if !h.Settled(now) {
			return true
		}
	}
	return false
}

// Prune drops finished interpolations from every handle.
func (e *Engine) Prune(handles []*Handle, now time.Time) {
	for _, h := range handles {
		h.prune(now)
	}
}

func (e *Engine) tween(from, to float64, now time.Time) Tween {
	return Tween{From: from, To: to, Start: now, Duration: e.timing.Duration, Ease: e.timing.Ease}
}
