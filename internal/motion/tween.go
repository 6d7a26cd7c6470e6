package motion

import "time"

// Tween interpolates a scalar from From to To over Duration starting at Start.
type Tween struct {
	From, To float64
	Start    time.Time
	Duration time.Duration
	Ease     Easing
}

// Still returns a tween that is already settled at v.
func Still(v float64) Tween {
	return Tween{From: v, To: v}
}

// Progress returns eased progress in [0,1] at now.
func (tw Tween) Progress(now time.Time) float64 {
	if tw.Duration <= 0 {
		return 1
	}
	if now.Before(tw.Start) {
		return 0
	}
	p := float64(now.Sub(tw.Start)) / float64(tw.Duration)
	if p >= 1 {
		return 1
	}
	if tw.Ease == nil {
		return p
	}
	return tw.Ease(p)
}

// Value returns the interpolated value at now.
func (tw Tween) Value(now time.Time) float64 {
	return lerp(tw.From, tw.To, tw.Progress(now))
}

// Done reports whether the tween has reached To.
func (tw Tween) Done(now time.Time) bool {
	return tw.Duration <= 0 || !now.Before(tw.Start.Add(tw.Duration))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
