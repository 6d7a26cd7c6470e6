package layout

// Axis is the main axis of a flex container.
type Axis uint8

const (
	axisUnset Axis = iota
	Row
	Column
)

// IsSet reports whether the axis was assigned.
func (a Axis) IsSet() bool { return a != axisUnset }

func (a Axis) String() string {
	switch a {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return "unset"
	}
}

// Align positions children on the cross axis.
type Align uint8

const (
	alignUnset Align = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// IsSet reports whether the alignment was assigned.
func (a Align) IsSet() bool { return a != alignUnset }

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unset"
	}
}

// Justify distributes free space on the main axis.
type Justify uint8

const (
	justifyUnset Justify = iota
	JustifyStart
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
)

// IsSet reports whether the justification was assigned.
func (j Justify) IsSet() bool { return j != justifyUnset }

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyCenter:
		return "center"
	case JustifyEnd:
		return "end"
	case JustifySpaceBetween:
		return "space-between"
	default:
		return "unset"
	}
}

// Corner anchors an absolutely positioned child inside its parent.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Style is the layout input of a node. Zero values mean: column flow,
// start alignment, start justification, auto size.
type Style struct {
	Direction  Axis
	AlignItems Align
	Justify    Justify
	Gap        float64

	Width  Length
	Height Length

	Padding Edges
	Margin  Edges

	// Absolute takes the node out of flow; it is anchored at Corner of the
	// parent's border box, displaced inward by Offset.
	Absolute bool
	Corner   Corner
	Offset   Point

	// FontSize scales intrinsic text measurement.
	FontSize float64
}
