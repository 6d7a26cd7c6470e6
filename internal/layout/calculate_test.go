package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer makes every rune 10px wide and every line 20px tall.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, _ float64) Size {
	return Size{Width: float64(10 * len([]rune(text))), Height: 20}
}

func TestCalculateColumnStacksWithPaddingAndGap(t *testing.T) {
	a := NewText("a", "ab", Style{})
	b := NewText("b", "abcd", Style{})
	root := NewNode("root", Style{Width: Px(200), Padding: EdgeAll(10), Gap: 5}, a, b)

	Calculate(root, 800, 600, fixedMeasurer{})

	assert.Equal(t, NewRect(0, 0, 200, 65), root.Layout)
	assert.Equal(t, NewRect(10, 10, 20, 20), a.Layout)
	assert.Equal(t, NewRect(10, 35, 40, 20), b.Layout)
}

func TestCalculateRowSpaceBetweenCentersCrossAxis(t *testing.T) {
	a := NewText("a", "ab", Style{})
	b := NewNode("b", Style{Width: Px(40), Height: Px(40)})
	root := NewNode("root", Style{
		Direction:  Row,
		Justify:    JustifySpaceBetween,
		AlignItems: AlignCenter,
		Width:      Px(200),
	}, a, b)

	Calculate(root, 800, 600, fixedMeasurer{})

	assert.Equal(t, 40.0, root.Layout.Height)
	assert.Equal(t, NewRect(0, 10, 20, 20), a.Layout)
	assert.Equal(t, NewRect(160, 0, 40, 40), b.Layout)
}

func TestCalculateRowFillTakesRemainingSpace(t *testing.T) {
	a := NewText("a", "abcde", Style{})
	b := NewNode("b", Style{Width: Fill()})
	root := NewNode("root", Style{Direction: Row, Gap: 10, Width: Px(300)}, a, b)

	Calculate(root, 800, 600, fixedMeasurer{})

	assert.Equal(t, 240.0, b.Layout.Width)
	assert.Equal(t, 60.0, b.Layout.X)
}

func TestCalculateAutoWidthShrinksToContent(t *testing.T) {
	text := NewText("t", "abc", Style{})
	box := NewNode("box", Style{Padding: EdgeAll(5)}, text)
	root := NewNode("root", Style{Width: Px(500)}, box)

	Calculate(root, 800, 600, fixedMeasurer{})

	assert.Equal(t, 40.0, box.Layout.Width)
	assert.Equal(t, 30.0, box.Layout.Height)
	assert.Equal(t, NewRect(5, 5, 30, 20), text.Layout)
}

func TestCalculateAbsoluteChildIsOutOfFlow(t *testing.T) {
	text := NewText("t", "abc", Style{})
	badge := NewNode("badge", Style{
		Absolute: true,
		Corner:   TopRight,
		Offset:   Point{X: 10, Y: 5},
		Width:    Px(50),
		Height:   Px(30),
	})
	root := NewNode("root", Style{Width: Px(300), Height: Px(100)}, text, badge)

	Calculate(root, 800, 600, fixedMeasurer{})

	assert.Equal(t, NewRect(0, 0, 30, 20), text.Layout)
	assert.Equal(t, NewRect(240, 5, 50, 30), badge.Layout)
}

func TestCalculateFillRootCentersChild(t *testing.T) {
	child := NewNode("child", Style{Width: Px(100), Height: Px(50)})
	root := NewNode("root", Style{
		Width:      Fill(),
		Height:     Fill(),
		Justify:    JustifyCenter,
		AlignItems: AlignCenter,
	}, child)

	Calculate(root, 400, 300, fixedMeasurer{})

	assert.Equal(t, NewRect(0, 0, 400, 300), root.Layout)
	assert.Equal(t, NewRect(150, 125, 100, 50), child.Layout)
}

func TestBoxesCollectsIdentifiedNodes(t *testing.T) {
	inner := NewText("inner", "x", Style{})
	root := NewNode("root", Style{Width: Px(100)}, NewNode("", Style{}, inner))

	Calculate(root, 100, 100, fixedMeasurer{})
	boxes := root.Boxes()

	require.Len(t, boxes, 2)
	assert.Equal(t, inner.Layout, boxes["inner"])
	assert.Same(t, inner, root.Find("inner"))
	assert.Nil(t, root.Find("missing"))
}
