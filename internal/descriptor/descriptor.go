// Package descriptor is the layout configuration table: one complete,
// immutable geometry/style record per card state.
package descriptor

import (
	"errors"
	"fmt"

	"github.com/jask/autolayout/internal/layout"
)

// ErrIncomplete is returned when a table or descriptor leaves a field unset.
var ErrIncomplete = errors.New("descriptor incomplete")

// Group names an optional element group whose presence varies by state.
type Group string

// GroupFan is the fanned stack of cards shown in the expanded state.
const GroupFan Group = "fan"

// Groups lists every optional group a descriptor must carry a flag for.
func Groups() []Group {
	return []Group{GroupFan}
}

// Container styles the card itself.
type Container struct {
	Width  layout.Length
	Height layout.Length
	Radius float64
}

// Media styles the image block.
type Media struct {
	Height float64
}

// Flow styles a flex group.
type Flow struct {
	Axis    layout.Axis
	Align   layout.Align
	Justify layout.Justify
}

func (f Flow) String() string {
	return f.Axis.String() + "/" + f.Align.String() + "/" + f.Justify.String()
}

// Info styles the secondary info group.
type Info struct {
	Flow
	Width layout.Length
}

func (i Info) String() string {
	return i.Flow.String() + " width=" + i.Width.String()
}

// Descriptor is the full style record for one state.
type Descriptor struct {
	Container Container
	Media     Media
	Content   Flow
	Info      Info
	Presence  map[Group]bool
}

// Present reports the presence flag of g.
func (d Descriptor) Present(g Group) bool {
	return d.Presence[g]
}

// Validate checks that every field is populated.
func (d Descriptor) Validate() error {
	var errs []error
	if !d.Container.Width.IsPx() || d.Container.Width.Pixels() <= 0 {
		errs = append(errs, fmt.Errorf("container width must be positive pixels, got %s", d.Container.Width))
	}
	if !d.Container.Height.IsSet() || d.Container.Height.IsFill() {
		errs = append(errs, fmt.Errorf("container height must be pixels or auto, got %s", d.Container.Height))
	}
	if d.Container.Radius < 0 {
		errs = append(errs, fmt.Errorf("container radius %g is negative", d.Container.Radius))
	}
	if d.Media.Height <= 0 {
		errs = append(errs, fmt.Errorf("media height %g must be positive", d.Media.Height))
	}
	if err := d.Content.validate("content"); err != nil {
		errs = append(errs, err)
	}
	if err := d.Info.validate("info"); err != nil {
		errs = append(errs, err)
	}
	if !d.Info.Width.IsSet() {
		errs = append(errs, errors.New("info width unset"))
	}
	for _, g := range Groups() {
		if _, ok := d.Presence[g]; !ok {
			errs = append(errs, fmt.Errorf("presence flag for %q unset", g))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrIncomplete, errors.Join(errs...))
	}
	return nil
}

func (f Flow) validate(name string) error {
	if !f.Axis.IsSet() || !f.Align.IsSet() || !f.Justify.IsSet() {
		return fmt.Errorf("%s flow has unset fields (axis=%s align=%s justify=%s)", name, f.Axis, f.Align, f.Justify)
	}
	return nil
}
