// Package presence mounts and unmounts optional element groups with enter
// and exit animations.
//
// Each group runs a small state machine:
//
//	Absent -> Entering -> Present -> Exiting -> Absent
//
// An exit keeps the group mounted until every member has finished moving
// out. A new enter during an exit resumes from where each member is.
package presence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jask/autolayout/internal/layout"
	"github.com/jask/autolayout/internal/motion"
)

// Phase is the lifecycle position of a group.
type Phase uint8

const (
	Absent Phase = iota
	Entering
	Present
	Exiting
)

func (p Phase) String() string {
	switch p {
	case Absent:
		return "absent"
	case Entering:
		return "entering"
	case Present:
		return "present"
	case Exiting:
		return "exiting"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// MemberSpec is the authored motion of one member: where it rests before
// entering (Offset from its rest box) and how long it waits to start.
type MemberSpec struct {
	ID     string
	Offset layout.Point
	Delay  time.Duration
}

// EventKind classifies an Event.
type EventKind uint8

const (
	MemberEntered EventKind = iota + 1
	MemberExited
	GroupUnmounted
)

func (k EventKind) String() string {
	switch k {
	case MemberEntered:
		return "member-entered"
	case MemberExited:
		return "member-exited"
	case GroupUnmounted:
		return "group-unmounted"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event reports a completed enter or exit.
type Event struct {
	Group  string
	Member string
	Kind   EventKind
}

// Visual is how a mounted member appears at one instant.
type Visual struct {
	Group   string
	Member  string
	Box     layout.Rect
	Opacity float64
}

type member struct {
	spec     MemberSpec
	handle   *motion.Handle
	progress motion.Tween
	reported bool
}

type group struct {
	id      string
	specs   []MemberSpec
	phase   Phase
	members []*member
}

// Controller owns every optional group and the handles of its members.
type Controller struct {
	timing motion.Timing
	groups map[string]*group
	order  []string
	log    *slog.Logger
}

// NewController creates a controller using timing for enters and exits.
func NewController(timing motion.Timing, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{timing: timing, groups: make(map[string]*group), log: log}
}

// Define registers a group and the authored motion of its members.
func (c *Controller) Define(id string, specs ...MemberSpec) {
	if _, ok := c.groups[id]; !ok {
		c.order = append(c.order, id)
	}
	c.groups[id] = &group{id: id, specs: specs}
}

// Phase returns the group's lifecycle phase.
func (c *Controller) Phase(id string) Phase {
	return c.mustGroup(id).phase
}

// Mounted reports whether the group is in the render tree.
func (c *Controller) Mounted(id string) bool {
	return c.mustGroup(id).phase != Absent
}

// Handles returns the handles of every mounted member.
func (c *Controller) Handles() []*motion.Handle {
	var out []*motion.Handle
	for _, id := range c.order {
		for _, m := range c.groups[id].members {
			out = append(out, m.handle)
		}
	}
	return out
}

// Settle mounts a group directly in the Present phase, without an enter
// animation. It is used for the initial render.
func (c *Controller) Settle(id string, rest []layout.Rect) {
	g := c.mustGroup(id)
	c.mount(g, rest, time.Time{})
	for _, m := range g.members {
		m.progress = motion.Still(1)
		m.reported = true
	}
	g.phase = Present
}

// OnPresenceChange reacts to a group's presence flag moving from
// wasPresent to isPresent. rest holds each member's resting box in the new
// layout, in MemberSpec order; it is ignored when the group is leaving.
func (c *Controller) OnPresenceChange(id string, wasPresent, isPresent bool, rest []layout.Rect, now time.Time) {
	g := c.mustGroup(id)
	if isPresent {
		c.commitRest(g, rest)
	}

	switch {
	case isPresent && g.phase == Absent:
		c.mount(g, rest, now)
	case isPresent && g.phase == Exiting:
		c.resume(g, now)
	case !isPresent && (g.phase == Entering || g.phase == Present):
		c.exit(g, now)
	default:
		return
	}
	c.log.Debug("presence changed", "group", id, "was", wasPresent, "is", isPresent, "phase", g.phase)
}

// Advance reports members that finished moving and unmounts groups whose
// exit is complete.
func (c *Controller) Advance(now time.Time) []Event {
	var events []Event
	for _, id := range c.order {
		g := c.groups[id]
		if g.phase != Entering && g.phase != Exiting {
			continue
		}
		kind := MemberEntered
		if g.phase == Exiting {
			kind = MemberExited
		}
		done := 0
		for _, m := range g.members {
			if !m.reported && m.progress.Done(now) {
				m.reported = true
				events = append(events, Event{Group: id, Member: m.spec.ID, Kind: kind})
			}
			if m.reported {
				done++
			}
		}
		if done < len(g.members) {
			continue
		}
		if g.phase == Entering {
			g.phase = Present
			continue
		}
		g.phase = Absent
		g.members = nil
		events = append(events, Event{Group: id, Kind: GroupUnmounted})
	}
	for _, ev := range events {
		c.log.Debug("presence event", "group", ev.Group, "member", ev.Member, "kind", ev.Kind)
	}
	return events
}

// Animating reports whether any group is entering or exiting.
func (c *Controller) Animating() bool {
	for _, g := range c.groups {
		if g.phase == Entering || g.phase == Exiting {
			return true
		}
	}
	return false
}

// Visuals returns every mounted member as it appears at now: displaced
// from its rest box by the unfinished part of its offset, with opacity
// equal to its progress.
func (c *Controller) Visuals(now time.Time) []Visual {
	return c.VisualsAt(now, layout.Point{})
}

// VisualsAt is Visuals for rest boxes expressed relative to anchor. The
// anchor is where the group's parent currently appears, so members follow
// it while it moves.
func (c *Controller) VisualsAt(now time.Time, anchor layout.Point) []Visual {
	var out []Visual
	for _, id := range c.order {
		for _, m := range c.groups[id].members {
			p := m.progress.Value(now)
			rest := m.handle.Box().Translate(anchor.X, anchor.Y)
			out = append(out, Visual{
				Group:   id,
				Member:  m.spec.ID,
				Box:     rest.Translate(m.spec.Offset.X*(1-p), m.spec.Offset.Y*(1-p)),
				Opacity: clamp01(p),
			})
		}
	}
	return out
}

func (c *Controller) mount(g *group, rest []layout.Rect, now time.Time) {
	g.members = make([]*member, len(g.specs))
	for i, spec := range g.specs {
		h := motion.NewHandle(g.id + "/" + spec.ID)
		if i < len(rest) {
			h.Commit(rest[i])
		}
		g.members[i] = &member{
			spec:     spec,
			handle:   h,
			progress: c.tween(0, 1, now.Add(spec.Delay)),
		}
	}
	g.phase = Entering
}

func (c *Controller) resume(g *group, now time.Time) {
	for _, m := range g.members {
		m.progress = c.tween(m.progress.Value(now), 1, now)
		m.reported = false
	}
	g.phase = Entering
}

func (c *Controller) exit(g *group, now time.Time) {
	settled := g.phase == Present
	for _, m := range g.members {
		start := now
		if settled {
			start = now.Add(m.spec.Delay)
		}
		m.progress = c.tween(m.progress.Value(now), 0, start)
		m.reported = false
	}
	g.phase = Exiting
}

func (c *Controller) commitRest(g *group, rest []layout.Rect) {
	for i, m := range g.members {
		if i < len(rest) {
			m.handle.Commit(rest[i])
		}
	}
}

// tween scales the configured duration by the distance left to travel so
// a resumed animation keeps the configured speed.
func (c *Controller) tween(from, to float64, start time.Time) motion.Tween {
	dist := to - from
	if dist < 0 {
		dist = -dist
	}
	return motion.Tween{
		From:     from,
		To:       to,
		Start:    start,
		Duration: time.Duration(float64(c.timing.Duration) * dist),
		Ease:     c.timing.Ease,
	}
}

func (c *Controller) mustGroup(id string) *group {
	g, ok := c.groups[id]
	if !ok {
		panic(fmt.Sprintf("presence: undefined group %q", id))
	}
	return g
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
