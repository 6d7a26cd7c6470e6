// Package card composes the animated card: it owns the state machine, the
// render tree and both animation controllers, and turns each trigger into a
// capture/apply/play transition.
package card

import (
	"log/slog"
	"time"

	"github.com/jask/autolayout/internal/descriptor"
	"github.com/jask/autolayout/internal/layout"
	"github.com/jask/autolayout/internal/motion"
	"github.com/jask/autolayout/internal/presence"
	"github.com/jask/autolayout/internal/steps"
)

// Default timings, used unless overridden by options.
var (
	DefaultLayoutTiming   = motion.Timing{Duration: 450 * time.Millisecond, Ease: motion.EaseInOutCubic}
	DefaultPresenceTiming = motion.Timing{Duration: 320 * time.Millisecond, Ease: motion.EaseOutCubic}
)

const (
	defaultFanOffset  = 48
	defaultFanStagger = 60 * time.Millisecond
)

// Card is the single interactive card.
type Card struct {
	machine  *steps.Machine
	table    *descriptor.Table
	tree     *Tree
	engine   *motion.Engine
	presence *presence.Controller

	viewport layout.Size
	current  descriptor.Descriptor
	log      *slog.Logger

	content        Content
	measurer       layout.Measurer
	layoutTiming   motion.Timing
	presenceTiming motion.Timing
	fan            []presence.MemberSpec
}

// Option configures a Card.
type Option func(*Card)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Card) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTable replaces the layout table.
func WithTable(t *descriptor.Table) Option {
	return func(c *Card) {
		if t != nil {
			c.table = t
		}
	}
}

// WithContent replaces the static content.
func WithContent(content Content) Option {
	return func(c *Card) { c.content = content }
}

// WithMeasurer replaces the text measurer.
func WithMeasurer(m layout.Measurer) Option {
	return func(c *Card) {
		if m != nil {
			c.measurer = m
		}
	}
}

// WithLayoutTiming sets the timing of FLIP and style interpolations.
func WithLayoutTiming(t motion.Timing) Option {
	return func(c *Card) { c.layoutTiming = t }
}

// WithPresenceTiming sets the timing of enter and exit animations.
func WithPresenceTiming(t motion.Timing) Option {
	return func(c *Card) { c.presenceTiming = t }
}

// WithFan sets the authored motion of the fan cards.
func WithFan(specs []presence.MemberSpec) Option {
	return func(c *Card) {
		if len(specs) > 0 {
			c.fan = specs
		}
	}
}

// New creates a card in the first state, laid out in a viewport of the
// given pixel size, with nothing animating.
func New(viewport layout.Size, opts ...Option) *Card {
	c := &Card{
		table:          descriptor.Default,
		log:            slog.Default(),
		content:        DefaultContent(),
		measurer:       layout.DefaultMeasurer,
		layoutTiming:   DefaultLayoutTiming,
		presenceTiming: DefaultPresenceTiming,
		fan:            FanSpecs(defaultFanOffset, defaultFanStagger),
		viewport:       viewport,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.machine = steps.NewMachine(c.log)
	c.tree = NewTree(c.content, c.measurer)
	c.engine = motion.NewEngine(c.layoutTiming, c.log)
	c.presence = presence.NewController(c.presenceTiming, c.log)
	c.presence.Define(string(descriptor.GroupFan), c.fan...)

	c.current = c.table.DescriptorFor(c.machine.Current())
	c.settle()
	return c
}

// Trigger advances the state machine and starts the transition to the new
// state. It returns immediately; Frame drives the animation.
func (c *Card) Trigger(now time.Time) steps.TransitionRequest {
	req := c.machine.Trigger(now)
	prev := c.current
	next := c.table.DescriptorFor(req.To)

	handles := c.tree.Handles()
	first := c.engine.Capture(handles, now)
	boxes := c.tree.Apply(next, c.viewport)
	res := c.engine.Play(now, first, handles, Targets(next, boxes))

	for _, g := range descriptor.Groups() {
		c.presence.OnPresenceChange(string(g), prev.Present(g), next.Present(g), fanRest(boxes), now)
	}
	c.current = next

	c.log.Info("transition started",
		"transition", req.ID,
		"from", req.From,
		"to", req.To,
		"animated", len(res.Animated),
		"snapped", len(res.Snapped),
	)
	return req
}

// Frame advances time-driven bookkeeping: it reports presence events and
// drops finished interpolations.
func (c *Card) Frame(now time.Time) []presence.Event {
	events := c.presence.Advance(now)
	c.engine.Prune(c.tree.Handles(), now)
	return events
}

// Animating reports whether anything is still moving at now.
func (c *Card) Animating(now time.Time) bool {
	return c.presence.Animating() || c.engine.Animating(c.tree.Handles(), now)
}

// Resize lays the current state out in a new viewport. Running
// interpolations are dropped; the card jumps to its new geometry.
func (c *Card) Resize(viewport layout.Size) {
	if viewport == c.viewport {
		return
	}
	c.viewport = viewport
	boxes := c.tree.Apply(c.current, viewport)
	for _, h := range c.tree.Handles() {
		h.Snap()
	}
	c.applyStyles(boxes)
	for _, g := range descriptor.Groups() {
		p := c.current.Present(g)
		c.presence.OnPresenceChange(string(g), p, p, fanRest(boxes), time.Time{})
	}
}

// State returns the current state.
func (c *Card) State() steps.State {
	return c.machine.Current()
}

// Descriptor returns the descriptor of the current state.
func (c *Card) Descriptor() descriptor.Descriptor {
	return c.current
}

// Viewport returns the viewport size in pixels.
func (c *Card) Viewport() layout.Size {
	return c.viewport
}

// FanPhase returns the lifecycle phase of the fan group.
func (c *Card) FanPhase() presence.Phase {
	return c.presence.Phase(string(descriptor.GroupFan))
}

// HitTest reports whether (x, y) falls on the card as currently drawn.
func (c *Card) HitTest(x, y float64, now time.Time) bool {
	return c.tree.Handle(ElementContainer).VisualBox(now).Contains(x, y)
}

func (c *Card) settle() {
	boxes := c.tree.Apply(c.current, c.viewport)
	c.applyStyles(boxes)
	for _, g := range descriptor.Groups() {
		if c.current.Present(g) {
			c.presence.Settle(string(g), fanRest(boxes))
		}
	}
}

func (c *Card) applyStyles(boxes map[string]layout.Rect) {
	for id, fields := range Targets(c.current, boxes) {
		h := c.tree.Handle(id)
		for k, v := range fields {
			h.SetStyle(k, v)
		}
	}
}
