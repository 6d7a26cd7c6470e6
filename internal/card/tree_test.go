package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/autolayout/internal/descriptor"
	"github.com/jask/autolayout/internal/layout"
	"github.com/jask/autolayout/internal/steps"
)

func TestBuildIncludesFanOnlyWhenPresent(t *testing.T) {
	t.Parallel()

	for _, row := range descriptor.Default.Rows() {
		root := Build(row.Descriptor, DefaultContent())
		for i := 0; i < FanSize; i++ {
			got := root.Find(FanMemberID(i)) != nil
			assert.Equal(t, row.Descriptor.Present(descriptor.GroupFan), got, "state %s fan card %d", row.State, i)
		}
		for _, id := range Animatable() {
			assert.NotNil(t, root.Find(id), "state %s missing %s", row.State, id)
		}
	}
}

func TestTreeApplyCommitsBoxes(t *testing.T) {
	t.Parallel()

	tree := NewTree(DefaultContent(), layout.DefaultMeasurer)
	for _, h := range tree.Handles() {
		assert.False(t, h.Measured())
	}

	d := descriptor.Default.DescriptorFor(steps.Expanded)
	boxes := tree.Apply(d, layout.Size{Width: 1200, Height: 900})

	for _, h := range tree.Handles() {
		require.True(t, h.Measured(), h.ID)
		assert.Equal(t, boxes[h.ID], h.Box())
	}

	container := boxes[ElementContainer]
	assert.Equal(t, 700.0, container.Width)
	for i := 0; i < FanSize; i++ {
		fan := boxes[FanMemberID(i)]
		assert.InDelta(t, container.Y+24+float64(i)*14, fan.Y, 1e-9)
		assert.True(t, fan.Right() <= container.Right())
	}
	assert.Len(t, fanRest(boxes), FanSize)
}

func TestTargetsResolveSentinels(t *testing.T) {
	t.Parallel()

	boxes := map[string]layout.Rect{
		ElementContainer: {Width: 400, Height: 520},
		ElementInfo:      {Width: 364, Height: 40},
	}

	compact := Targets(descriptor.Default.DescriptorFor(steps.Compact), boxes)
	assert.Equal(t, 400.0, compact[ElementContainer][StyleWidth])
	assert.Equal(t, 520.0, compact[ElementContainer][StyleHeight])
	assert.Equal(t, 24.0, compact[ElementContainer][StyleRadius])
	assert.Equal(t, 230.0, compact[ElementMedia][StyleHeight])
	assert.Equal(t, 364.0, compact[ElementInfo][StyleWidth])

	expanded := Targets(descriptor.Default.DescriptorFor(steps.Expanded), boxes)
	assert.Equal(t, 700.0, expanded[ElementContainer][StyleWidth])
	assert.Equal(t, 24.0, expanded[ElementContainer][StyleRadius])
}

func TestFanSpecsStagger(t *testing.T) {
	t.Parallel()

	specs := FanSpecs(48, 60*time.Millisecond)
	require.Len(t, specs, FanSize)
	for i, s := range specs {
		assert.Equal(t, 48+float64(i)*8, s.Offset.Y)
		assert.Equal(t, time.Duration(i)*60*time.Millisecond, s.Delay)
	}
	assert.Equal(t, "fan/card-2", FanMemberID(2))
}
