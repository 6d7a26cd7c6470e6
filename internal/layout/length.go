package layout

import "fmt"

type lengthKind uint8

const (
	lengthUnset lengthKind = iota
	lengthPx
	lengthAuto
	lengthFill
)

// Length is a dimension that is either a fixed pixel value or one of the
// sentinels Auto (size to content) and Fill (take the available space).
// The zero Length is unset; layout treats it as Auto, but descriptor
// validation rejects it.
type Length struct {
	kind lengthKind
	px   float64
}

// Px returns a fixed length in pixels.
func Px(v float64) Length {
	return Length{kind: lengthPx, px: v}
}

// Auto returns the size-to-content sentinel.
func Auto() Length {
	return Length{kind: lengthAuto}
}

// Fill returns the take-available-space sentinel.
func Fill() Length {
	return Length{kind: lengthFill}
}

// IsSet reports whether the length was assigned.
func (l Length) IsSet() bool { return l.kind != lengthUnset }

// IsPx reports whether the length is a fixed pixel value.
func (l Length) IsPx() bool { return l.kind == lengthPx }

// IsAuto reports whether the length sizes to content. Unset counts as auto.
func (l Length) IsAuto() bool { return l.kind == lengthAuto || l.kind == lengthUnset }

// IsFill reports whether the length takes the available space.
func (l Length) IsFill() bool { return l.kind == lengthFill }

// IsSentinel reports whether the length must be resolved by measurement.
func (l Length) IsSentinel() bool { return l.kind == lengthAuto || l.kind == lengthFill }

// Pixels returns the fixed value, or 0 for sentinels.
func (l Length) Pixels() float64 {
	if l.kind != lengthPx {
		return 0
	}
	return l.px
}

// Resolve returns the pixel value of a fixed length, or the measured size
// for a sentinel. Sentinels are never interpolated directly; callers resolve
// both endpoints first.
func (l Length) Resolve(measured float64) float64 {
	if l.kind == lengthPx {
		return l.px
	}
	return measured
}

func (l Length) String() string {
	switch l.kind {
	case lengthPx:
		return fmt.Sprintf("%gpx", l.px)
	case lengthAuto:
		return "auto"
	case lengthFill:
		return "fill"
	default:
		return "unset"
	}
}
