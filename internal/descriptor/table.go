package descriptor

import (
	"fmt"
	"maps"

	"github.com/jask/autolayout/internal/layout"
	"github.com/jask/autolayout/internal/steps"
)

// Table maps every state to its descriptor. It is immutable once built.
type Table struct {
	byState map[steps.State]Descriptor
}

// NewTable validates that every state has a complete descriptor.
func NewTable(entries map[steps.State]Descriptor) (*Table, error) {
	t := &Table{byState: make(map[steps.State]Descriptor, len(entries))}
	for _, s := range steps.All() {
		d, ok := entries[s]
		if !ok {
			return nil, fmt.Errorf("%w: no descriptor for state %s", ErrIncomplete, s)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("state %s: %w", s, err)
		}
		d.Presence = maps.Clone(d.Presence)
		t.byState[s] = d
	}
	for s := range entries {
		if !s.Valid() {
			return nil, fmt.Errorf("descriptor for unknown state %d", int(s))
		}
	}
	return t, nil
}

// MustTable is NewTable for tables declared at init time.
func MustTable(entries map[steps.State]Descriptor) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// DescriptorFor returns the descriptor of s. An invalid state is a
// programming error and panics.
func (t *Table) DescriptorFor(s steps.State) Descriptor {
	d, ok := t.byState[s]
	if !ok {
		panic(fmt.Sprintf("descriptor: no entry for state %d", int(s)))
	}
	d.Presence = maps.Clone(d.Presence)
	return d
}

// Row pairs a state with its descriptor.
type Row struct {
	State      steps.State
	Descriptor Descriptor
}

// Rows returns the table in state order.
func (t *Table) Rows() []Row {
	out := make([]Row, 0, len(t.byState))
	for _, s := range steps.All() {
		out = append(out, Row{State: s, Descriptor: t.DescriptorFor(s)})
	}
	return out
}

// Default is the card's layout table.
var Default = MustTable(map[steps.State]Descriptor{
	steps.Compact: {
		Container: Container{Width: layout.Px(400), Height: layout.Auto(), Radius: 24},
		Media:     Media{Height: 230},
		Content:   Flow{Axis: layout.Column, Align: layout.AlignStart, Justify: layout.JustifyStart},
		Info: Info{
			Flow:  Flow{Axis: layout.Column, Align: layout.AlignStart, Justify: layout.JustifyStart},
			Width: layout.Fill(),
		},
		Presence: map[Group]bool{GroupFan: false},
	},
	steps.Wide: {
		Container: Container{Width: layout.Px(550), Height: layout.Auto(), Radius: 24},
		Media:     Media{Height: 280},
		Content:   Flow{Axis: layout.Column, Align: layout.AlignStart, Justify: layout.JustifyStart},
		Info: Info{
			Flow:  Flow{Axis: layout.Row, Align: layout.AlignCenter, Justify: layout.JustifySpaceBetween},
			Width: layout.Fill(),
		},
		Presence: map[Group]bool{GroupFan: false},
	},
	steps.Expanded: {
		Container: Container{Width: layout.Px(700), Height: layout.Auto(), Radius: 24},
		Media:     Media{Height: 330},
		Content:   Flow{Axis: layout.Row, Align: layout.AlignCenter, Justify: layout.JustifySpaceBetween},
		Info: Info{
			Flow:  Flow{Axis: layout.Row, Align: layout.AlignCenter, Justify: layout.JustifySpaceBetween},
			Width: layout.Auto(),
		},
		Presence: map[Group]bool{GroupFan: true},
	},
})
