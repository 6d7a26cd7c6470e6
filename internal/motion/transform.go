package motion

import (
	"math"

	"github.com/jask/autolayout/internal/layout"
)

// Transform translates and scales a box about its top-left corner.
type Transform struct {
	DX, DY float64
	SX, SY float64
}

// Identity leaves boxes unchanged.
var Identity = Transform{SX: 1, SY: 1}

// Invert returns the transform that makes last appear at first. It reports
// false when last has no area, since no scale can map it.
func Invert(first, last layout.Rect) (Transform, bool) {
	if last.IsEmpty() {
		return Identity, false
	}
	return Transform{
		DX: first.X - last.X,
		DY: first.Y - last.Y,
		SX: first.Width / last.Width,
		SY: first.Height / last.Height,
	}, true
}

// Mix moves t toward identity: 0 returns t, 1 returns Identity.
func (t Transform) Mix(progress float64) Transform {
	return Transform{
		DX: lerp(t.DX, 0, progress),
		DY: lerp(t.DY, 0, progress),
		SX: lerp(t.SX, 1, progress),
		SY: lerp(t.SY, 1, progress),
	}
}

// Apply returns r as it appears under t.
func (t Transform) Apply(r layout.Rect) layout.Rect {
	return layout.Rect{
		X:      r.X + t.DX,
		Y:      r.Y + t.DY,
		Width:  r.Width * t.SX,
		Height: r.Height * t.SY,
	}
}

const epsilon = 1e-6

// IsIdentity reports whether t is (numerically) the identity.
func (t Transform) IsIdentity() bool {
	return math.Abs(t.DX) < epsilon && math.Abs(t.DY) < epsilon &&
		math.Abs(t.SX-1) < epsilon && math.Abs(t.SY-1) < epsilon
}
