package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/autolayout/internal/layout"
)

const tol = 1e-3

func linearEngine() *Engine {
	return NewEngine(Timing{Duration: time.Second, Ease: Linear}, nil)
}

func TestInvertMapsLastOntoFirst(t *testing.T) {
	first := layout.NewRect(10, 20, 400, 300)
	last := layout.NewRect(50, 5, 550, 350)

	inv, ok := Invert(first, last)
	require.True(t, ok)
	assert.True(t, inv.Apply(last).ApproxEqual(first, tol))
	assert.True(t, inv.Mix(1).IsIdentity())

	_, ok = Invert(first, layout.NewRect(0, 0, 0, 10))
	assert.False(t, ok)
}

func TestPlayStartsAtPreviousBox(t *testing.T) {
	e := linearEngine()
	now := time.Unix(0, 0)
	h := NewHandle("container")
	a := layout.NewRect(200, 100, 400, 500)
	b := layout.NewRect(125, 80, 550, 560)
	h.Commit(a)

	first := e.Capture([]*Handle{h}, now)
	h.Commit(b)
	res := e.Play(now, first, []*Handle{h}, nil)

	assert.Equal(t, []string{"container"}, res.Animated)
	assert.True(t, h.VisualBox(now).ApproxEqual(a, tol), "got %s", h.VisualBox(now))

	mid := h.VisualBox(now.Add(500 * time.Millisecond))
	assert.InDelta(t, 475, mid.Width, tol)
	assert.InDelta(t, 162.5, mid.X, tol)

	assert.True(t, h.VisualBox(now.Add(time.Second)).ApproxEqual(b, tol))
	assert.True(t, e.Animating([]*Handle{h}, now.Add(900*time.Millisecond)))
	assert.False(t, e.Animating([]*Handle{h}, now.Add(time.Second)))
}

func TestPlayInterruptedContinuesFromVisualBox(t *testing.T) {
	e := linearEngine()
	t0 := time.Unix(0, 0)
	h := NewHandle("media")
	h.Commit(layout.NewRect(0, 0, 100, 100))

	first := e.Capture([]*Handle{h}, t0)
	h.Commit(layout.NewRect(0, 0, 300, 100))
	e.Play(t0, first, []*Handle{h}, nil)

	t1 := t0.Add(250 * time.Millisecond)
	onScreen := h.VisualBox(t1)
	require.InDelta(t, 150, onScreen.Width, tol)

	second := e.Capture([]*Handle{h}, t1)
	h.Commit(layout.NewRect(40, 0, 100, 100))
	e.Play(t1, second, []*Handle{h}, nil)

	assert.True(t, h.VisualBox(t1).ApproxEqual(onScreen, tol), "snapped to %s", h.VisualBox(t1))
	assert.True(t, h.VisualBox(t1.Add(time.Second)).ApproxEqual(layout.NewRect(40, 0, 100, 100), tol))
}

func TestPlaySnapsWithoutPreviousBox(t *testing.T) {
	e := linearEngine()
	now := time.Unix(0, 0)
	h := NewHandle("title")

	first := e.Capture([]*Handle{h}, now)
	h.Commit(layout.NewRect(5, 5, 50, 20))
	res := e.Play(now, first, []*Handle{h}, Targets{"title": {"width": 50}})

	assert.Equal(t, []string{"title"}, res.Snapped)
	assert.Equal(t, layout.NewRect(5, 5, 50, 20), h.VisualBox(now))
	v, ok := h.Style("width", now)
	require.True(t, ok)
	assert.Equal(t, 50.0, v)
	assert.False(t, e.Animating([]*Handle{h}, now))
}

func TestStyleTweensRunInLockstepWithBox(t *testing.T) {
	e := linearEngine()
	now := time.Unix(0, 0)
	h := NewHandle("container")
	h.Commit(layout.NewRect(0, 0, 400, 500))
	h.SetStyle("width", 400)
	h.SetStyle("radius", 24)

	first := e.Capture([]*Handle{h}, now)
	h.Commit(layout.NewRect(0, 0, 550, 500))
	e.Play(now, first, []*Handle{h}, Targets{"container": {"width": 550, "radius": 32}})

	for _, ms := range []int{0, 100, 333, 500, 999, 1000} {
		at := now.Add(time.Duration(ms) * time.Millisecond)
		w, _ := h.Style("width", at)
		assert.InDelta(t, h.VisualBox(at).Width, w, tol, "at %dms", ms)
	}
	r, _ := h.Style("radius", now.Add(500*time.Millisecond))
	assert.InDelta(t, 28, r, tol)
	assert.Equal(t, []string{"radius", "width"}, h.StyleKeys())
}

func TestPruneSettlesFinishedAnimations(t *testing.T) {
	e := linearEngine()
	now := time.Unix(0, 0)
	h := NewHandle("info")
	h.Commit(layout.NewRect(0, 0, 10, 10))
	first := e.Capture([]*Handle{h}, now)
	h.Commit(layout.NewRect(20, 0, 10, 10))
	e.Play(now, first, []*Handle{h}, Targets{"info": {"width": 10}})

	later := now.Add(2 * time.Second)
	e.Prune([]*Handle{h}, later)

	assert.True(t, h.Transform(now).IsIdentity())
	assert.Equal(t, layout.NewRect(20, 0, 10, 10), h.VisualBox(now))
}

func TestUnchangedBoxDoesNotAnimate(t *testing.T) {
	e := linearEngine()
	now := time.Unix(0, 0)
	h := NewHandle("url")
	box := layout.NewRect(1, 2, 3, 4)
	h.Commit(box)
	first := e.Capture([]*Handle{h}, now)
	h.Commit(box)

	res := e.Play(now, first, []*Handle{h}, nil)
	assert.Empty(t, res.Animated)
	assert.Empty(t, res.Snapped)
	assert.False(t, e.Animating([]*Handle{h}, now))
}
