package motion

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/tanema/gween/ease"
)

// ErrUnknownEasing is returned for an easing name that is not registered.
var ErrUnknownEasing = errors.New("unknown easing")

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(float64) float64

// FromTweenFunc adapts a gween curve, evaluated over a unit change and a
// unit duration, to an Easing.
func FromTweenFunc(f ease.TweenFunc) Easing {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return float64(f(float32(t), 0, 1, 1))
	}
}

var (
	Linear         = FromTweenFunc(ease.Linear)
	EaseOutCubic   = FromTweenFunc(ease.OutCubic)
	EaseOutQuart   = FromTweenFunc(ease.OutQuart)
	EaseInOutCubic = FromTweenFunc(ease.InOutCubic)
)

var easings = map[string]Easing{
	"linear":            Linear,
	"ease-out-cubic":    EaseOutCubic,
	"ease-out-quart":    EaseOutQuart,
	"ease-in-out-cubic": EaseInOutCubic,
}

// EasingByName looks up a registered curve.
func EasingByName(name string) (Easing, error) {
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownEasing, name, EasingNames())
	}
	return e, nil
}

// EasingNames lists the registered curves in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Timing is a fixed duration and curve shared by every interpolation of one
// kind of animation.
type Timing struct {
	Duration time.Duration
	Ease     Easing
}

// NewTiming resolves a named curve into a Timing.
func NewTiming(d time.Duration, easing string) (Timing, error) {
	e, err := EasingByName(easing)
	if err != nil {
		return Timing{}, err
	}
	return Timing{Duration: d, Ease: e}, nil
}
