package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/autolayout/internal/layout"
	"github.com/jask/autolayout/internal/motion"
	"github.com/jask/autolayout/internal/presence"
	"github.com/jask/autolayout/internal/steps"
)

const tol = 1e-3

var testViewport = layout.Size{Width: 1200, Height: 900}

func newTestCard(t *testing.T) *Card {
	t.Helper()
	linear := motion.Timing{Duration: time.Second, Ease: motion.Linear}
	return New(testViewport,
		WithLayoutTiming(linear),
		WithPresenceTiming(linear),
		WithFan(FanSpecs(48, 100*time.Millisecond)),
	)
}

func boxesOf(s Scene) map[string]layout.Rect {
	out := make(map[string]layout.Rect, len(s.Elements))
	for _, e := range s.Elements {
		out[e.ID] = e.Box
	}
	return out
}

func TestNewCardIsSettledInFirstState(t *testing.T) {
	c := newTestCard(t)
	now := time.Unix(0, 0)

	assert.Equal(t, steps.First, c.State())
	assert.False(t, c.Animating(now))

	s := c.Scene(now)
	require.Len(t, s.Elements, len(Animatable()))
	assert.Equal(t, 400.0, s.Style(ElementContainer, StyleWidth))
	assert.Equal(t, 230.0, s.Style(ElementMedia, StyleHeight))
	assert.Equal(t, 24.0, s.Style(ElementContainer, StyleRadius))
	assert.Empty(t, s.Fan)

	container, _ := s.Element(ElementContainer)
	assert.InDelta(t, 400, container.Box.Width, tol)
	assert.InDelta(t, (testViewport.Width-400)/2, container.Box.X, tol)
	assert.InDelta(t, container.Box.Height, s.Style(ElementContainer, StyleHeight), tol)
}

func TestTriggerKeepsEveryElementAtItsPreviousBox(t *testing.T) {
	c := newTestCard(t)
	now := time.Unix(0, 0)

	for i := 0; i < steps.Count; i++ {
		before := boxesOf(c.Scene(now))
		c.Trigger(now)
		after := boxesOf(c.Scene(now))

		for id, box := range before {
			assert.True(t, after[id].ApproxEqual(box, tol), "%s moved from %s to %s on trigger %d", id, box, after[id], i)
		}
		now = now.Add(5 * time.Second)
		c.Frame(now)
	}
}

func TestScenarioCompactWideExpandedCompact(t *testing.T) {
	c := newTestCard(t)
	t0 := time.Unix(0, 0)

	// 1 -> 2
	req := c.Trigger(t0)
	require.Equal(t, steps.Compact, req.From)
	require.Equal(t, steps.Wide, req.To)
	assert.True(t, c.Animating(t0))

	mid := c.Scene(t0.Add(500 * time.Millisecond))
	assert.InDelta(t, 475, mid.Style(ElementContainer, StyleWidth), tol)
	assert.InDelta(t, 255, mid.Style(ElementMedia, StyleHeight), tol)
	container, _ := mid.Element(ElementContainer)
	assert.InDelta(t, 475, container.Box.Width, tol)
	assert.Equal(t, layout.Row, mid.Info.Axis)
	assert.Empty(t, mid.Fan)
	assert.Equal(t, presence.Absent, c.FanPhase())

	t1 := t0.Add(time.Second)
	c.Frame(t1)
	assert.False(t, c.Animating(t1))
	done := c.Scene(t1)
	assert.Equal(t, 550.0, done.Style(ElementContainer, StyleWidth))
	assert.Equal(t, 280.0, done.Style(ElementMedia, StyleHeight))

	// 2 -> 3
	c.Trigger(t1)
	assert.Equal(t, steps.Expanded, c.State())
	assert.Equal(t, presence.Entering, c.FanPhase())
	enter := c.Scene(t1)
	require.Len(t, enter.Fan, FanSize)
	for _, v := range enter.Fan {
		assert.Equal(t, 0.0, v.Opacity)
	}
	assert.InDelta(t, 625, c.Scene(t1.Add(500*time.Millisecond)).Style(ElementContainer, StyleWidth), tol)

	t2 := t1.Add(1200 * time.Millisecond)
	c.Frame(t2)
	assert.Equal(t, presence.Present, c.FanPhase())
	assert.Equal(t, 700.0, c.Scene(t2).Style(ElementContainer, StyleWidth))

	// 3 -> 1
	c.Trigger(t2)
	assert.Equal(t, steps.Compact, c.State())
	assert.Equal(t, presence.Exiting, c.FanPhase())
	assert.Len(t, c.Scene(t2.Add(500*time.Millisecond)).Fan, FanSize, "fan must stay mounted while exiting")
	assert.InDelta(t, 550, c.Scene(t2.Add(500*time.Millisecond)).Style(ElementContainer, StyleWidth), tol)

	events := c.Frame(t2.Add(time.Second))
	assert.Equal(t, []presence.Event{{Group: "fan", Member: "card-0", Kind: presence.MemberExited}}, events)
	assert.Equal(t, presence.Exiting, c.FanPhase())
	assert.Len(t, c.Scene(t2.Add(time.Second)).Fan, FanSize)

	events = c.Frame(t2.Add(1200 * time.Millisecond))
	assert.Contains(t, events, presence.Event{Group: "fan", Kind: presence.GroupUnmounted})
	assert.Equal(t, presence.Absent, c.FanPhase())
	final := c.Scene(t2.Add(1200 * time.Millisecond))
	assert.Empty(t, final.Fan)
	assert.Equal(t, 400.0, final.Style(ElementContainer, StyleWidth))
	assert.False(t, c.Animating(t2.Add(1200*time.Millisecond)))
}

func TestRapidTriggersSettleLikeSequentialOnes(t *testing.T) {
	const n = 5
	rapid := newTestCard(t)
	seq := newTestCard(t)
	start := time.Unix(0, 0)

	now := start
	for i := 0; i < n; i++ {
		rapid.Trigger(now)
		now = now.Add(10 * time.Millisecond)
		rapid.Frame(now)
	}
	end := now.Add(10 * time.Second)
	rapid.Frame(end)

	now = start
	for i := 0; i < n; i++ {
		seq.Trigger(now)
		now = now.Add(5 * time.Second)
		seq.Frame(now)
	}

	require.Equal(t, seq.State(), rapid.State())
	assert.Equal(t, seq.FanPhase(), rapid.FanPhase())

	a, b := rapid.Scene(end), seq.Scene(now)
	for id, box := range boxesOf(b) {
		assert.True(t, boxesOf(a)[id].ApproxEqual(box, tol), "%s: rapid %s vs sequential %s", id, boxesOf(a)[id], box)
	}
	require.Len(t, a.Fan, len(b.Fan))
	for i := range b.Fan {
		assert.True(t, a.Fan[i].Box.ApproxEqual(b.Fan[i].Box, tol))
		assert.Equal(t, b.Fan[i].Opacity, a.Fan[i].Opacity)
	}
}

func TestInterruptedTransitionDoesNotSnap(t *testing.T) {
	c := newTestCard(t)
	t0 := time.Unix(0, 0)
	c.Trigger(t0)

	t1 := t0.Add(300 * time.Millisecond)
	before := boxesOf(c.Scene(t1))
	c.Trigger(t1)
	after := boxesOf(c.Scene(t1))

	for id, box := range before {
		assert.True(t, after[id].ApproxEqual(box, tol), "%s snapped", id)
	}
	w := c.Scene(t1).Style(ElementContainer, StyleWidth)
	assert.InDelta(t, 445, w, tol)
}

func TestHitTestFollowsVisualBox(t *testing.T) {
	c := newTestCard(t)
	now := time.Unix(0, 0)
	container, _ := c.Scene(now).Element(ElementContainer)
	center := container.Box.Center()

	assert.True(t, c.HitTest(center.X, center.Y, now))
	assert.False(t, c.HitTest(0, 0, now))
}

func TestResizeRelaysOutWithoutAnimating(t *testing.T) {
	c := newTestCard(t)
	now := time.Unix(0, 0)
	c.Resize(layout.Size{Width: 800, Height: 600})

	container, _ := c.Scene(now).Element(ElementContainer)
	assert.InDelta(t, 200, container.Box.X, tol)
	assert.False(t, c.Animating(now))
	assert.Equal(t, layout.Size{Width: 800, Height: 600}, c.Viewport())
}

func assertFanInsideContainer(t *testing.T, s Scene, label string) {
	t.Helper()
	container, ok := s.Element(ElementContainer)
	require.True(t, ok)
	box := container.Box
	for _, v := range s.Fan {
		assert.GreaterOrEqual(t, v.Box.X, box.X-tol, "%s: %s left of %s", label, v.Member, box)
		assert.GreaterOrEqual(t, v.Box.Y, box.Y-tol, "%s: %s above %s", label, v.Member, box)
		assert.LessOrEqual(t, v.Box.Right(), box.Right()+tol, "%s: %s right of %s", label, v.Member, box)
		assert.LessOrEqual(t, v.Box.Bottom(), box.Bottom()+tol, "%s: %s below %s", label, v.Member, box)
	}
}

func expandedCard(t *testing.T, start time.Time) (*Card, time.Time) {
	t.Helper()
	c := newTestCard(t)
	c.Trigger(start)
	t1 := start.Add(time.Second)
	c.Frame(t1)
	c.Trigger(t1)
	require.Equal(t, presence.Entering, c.FanPhase())
	return c, t1
}

func TestFanStaysInsideContainerWhileEnteringAndExiting(t *testing.T) {
	c, t1 := expandedCard(t, time.Unix(0, 0))

	for at := t1; !at.After(t1.Add(1200 * time.Millisecond)); at = at.Add(100 * time.Millisecond) {
		c.Frame(at)
		s := c.Scene(at)
		require.Len(t, s.Fan, FanSize)
		assertFanInsideContainer(t, s, "enter "+at.Sub(t1).String())
	}
	t2 := t1.Add(1200 * time.Millisecond)
	require.Equal(t, presence.Present, c.FanPhase())

	c.Trigger(t2)
	require.Equal(t, presence.Exiting, c.FanPhase())
	for at := t2; at.Before(t2.Add(1200 * time.Millisecond)); at = at.Add(100 * time.Millisecond) {
		c.Frame(at)
		assertFanInsideContainer(t, c.Scene(at), "exit "+at.Sub(t2).String())
	}
}

func TestFanFollowsContainerTopRightCorner(t *testing.T) {
	c, t1 := expandedCard(t, time.Unix(0, 0))
	at := t1.Add(400 * time.Millisecond)

	s := c.Scene(at)
	container, _ := s.Element(ElementContainer)
	require.Len(t, s.Fan, FanSize)
	// card-0 rests 24px in from the corner and is not delayed.
	p := 0.4
	first := s.Fan[0]
	assert.InDelta(t, container.Box.Right()-24, first.Box.Right(), tol)
	assert.InDelta(t, container.Box.Y+24+48*(1-p), first.Box.Y, tol)
	assert.InDelta(t, p, first.Opacity, tol)
}

func TestResizeWhileFanExitsKeepsItInsideContainer(t *testing.T) {
	c, t1 := expandedCard(t, time.Unix(0, 0))
	t2 := t1.Add(1200 * time.Millisecond)
	c.Frame(t2)
	c.Trigger(t2)

	mid := t2.Add(300 * time.Millisecond)
	c.Frame(mid)
	c.Resize(layout.Size{Width: 800, Height: 600})
	require.Equal(t, presence.Exiting, c.FanPhase())

	s := c.Scene(mid)
	require.Len(t, s.Fan, FanSize)
	assertFanInsideContainer(t, s, "after resize")

	container, _ := s.Element(ElementContainer)
	assert.InDelta(t, 200, container.Box.X, tol)
	assert.InDelta(t, container.Box.Right()-24, s.Fan[0].Box.Right(), tol)
}
