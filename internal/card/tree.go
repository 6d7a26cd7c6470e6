package card

import (
	"fmt"
	"time"

	"github.com/jask/autolayout/internal/descriptor"
	"github.com/jask/autolayout/internal/layout"
	"github.com/jask/autolayout/internal/motion"
	"github.com/jask/autolayout/internal/presence"
)

// Element IDs of the render tree.
const (
	ElementStage     = "stage"
	ElementContainer = "container"
	ElementMedia     = "media"
	ElementContent   = "content"
	ElementTitle     = "title"
	ElementInfo      = "info"
	ElementURL       = "url"
	ElementUpdated   = "updated"
)

// Style fields tracked on handles.
const (
	StyleWidth  = "width"
	StyleHeight = "height"
	StyleRadius = "radius"
)

// FanSize is the number of cards in the fan group.
const FanSize = 3

// Animatable lists the permanent layout-animatable elements in paint order.
func Animatable() []string {
	return []string{
		ElementContainer,
		ElementMedia,
		ElementContent,
		ElementTitle,
		ElementInfo,
		ElementURL,
		ElementUpdated,
	}
}

// Assets are logical references to static images. Loading them is someone
// else's job.
type Assets struct {
	Main string
	Logo string
	Card string
}

// Content is the static, non-animated content of the card.
type Content struct {
	Title   string
	URL     string
	Updated string
	Assets  Assets
}

// DefaultContent returns the card's stock text and asset references.
func DefaultContent() Content {
	return Content{
		Title:   "Auto-layout\nInteraction",
		URL:     "www.config.com",
		Updated: "Last update 2024",
		Assets: Assets{
			Main: "/main.png",
			Logo: "/logo.svg",
			Card: "/card.png",
		},
	}
}

// FanMemberID returns the layout ID of the i-th fan card.
func FanMemberID(i int) string {
	return fmt.Sprintf("%s/card-%d", descriptor.GroupFan, i)
}

// FanSpecs authors the fan's enter motion: each card rises from offset
// pixels below its rest box, a little further and later than the last.
func FanSpecs(offset float64, stagger time.Duration) []presence.MemberSpec {
	specs := make([]presence.MemberSpec, FanSize)
	for i := range specs {
		specs[i] = presence.MemberSpec{
			ID:     fmt.Sprintf("card-%d", i),
			Offset: layout.Point{Y: offset + float64(i)*8},
			Delay:  time.Duration(i) * stagger,
		}
	}
	return specs
}

// Build composes the layout tree for one descriptor.
func Build(d descriptor.Descriptor, c Content) *layout.Node {
	url := layout.NewText(ElementURL, c.URL, layout.Style{FontSize: 16, Margin: layout.Edges{Right: 24}})
	updated := layout.NewText(ElementUpdated, c.Updated, layout.Style{FontSize: 16})
	info := layout.NewNode(ElementInfo, layout.Style{
		Direction:  d.Info.Axis,
		AlignItems: d.Info.Align,
		Justify:    d.Info.Justify,
		Width:      d.Info.Width,
	}, url, updated)

	title := layout.NewText(ElementTitle, c.Title, layout.Style{FontSize: 36})
	content := layout.NewNode(ElementContent, layout.Style{
		Direction:  d.Content.Axis,
		AlignItems: d.Content.Align,
		Justify:    d.Content.Justify,
		Gap:        40,
		Width:      layout.Fill(),
		Padding:    layout.EdgeTRBL(40, 20, 32, 20),
	}, title, info)

	media := layout.NewNode(ElementMedia, layout.Style{
		Width:  layout.Fill(),
		Height: layout.Px(d.Media.Height),
	})

	children := []*layout.Node{media, content}
	if d.Present(descriptor.GroupFan) {
		for i := 0; i < FanSize; i++ {
			children = append(children, layout.NewNode(FanMemberID(i), layout.Style{
				Absolute: true,
				Corner:   layout.TopRight,
				Offset:   layout.Point{X: 24 + float64(i)*44, Y: 24 + float64(i)*14},
				Width:    layout.Px(96),
				Height:   layout.Px(64),
			}))
		}
	}

	container := layout.NewNode(ElementContainer, layout.Style{
		Width:   d.Container.Width,
		Height:  d.Container.Height,
		Padding: layout.EdgeAll(8),
	}, children...)

	return layout.NewNode(ElementStage, layout.Style{
		Width:      layout.Fill(),
		Height:     layout.Fill(),
		Justify:    layout.JustifyCenter,
		AlignItems: layout.AlignCenter,
	}, container)
}

// Targets resolves the descriptor's numeric style fields against measured
// boxes. Sentinels become the measured pixel size.
func Targets(d descriptor.Descriptor, boxes map[string]layout.Rect) motion.Targets {
	c := boxes[ElementContainer]
	return motion.Targets{
		ElementContainer: {
			StyleWidth:  d.Container.Width.Resolve(c.Width),
			StyleHeight: d.Container.Height.Resolve(c.Height),
			StyleRadius: d.Container.Radius,
		},
		ElementMedia: {
			StyleHeight: d.Media.Height,
		},
		ElementInfo: {
			StyleWidth: d.Info.Width.Resolve(boxes[ElementInfo].Width),
		},
	}
}

// Tree is the render tree: the current layout and the handles of the
// permanent animatable elements.
type Tree struct {
	content  Content
	measurer layout.Measurer
	root     *layout.Node
	handles  []*motion.Handle
	byID     map[string]*motion.Handle
}

// NewTree creates a tree with an unmeasured handle per animatable element.
func NewTree(c Content, m layout.Measurer) *Tree {
	t := &Tree{content: c, measurer: m, byID: make(map[string]*motion.Handle)}
	for _, id := range Animatable() {
		h := motion.NewHandle(id)
		t.handles = append(t.handles, h)
		t.byID[id] = h
	}
	return t
}

// Apply lays out d inside the viewport, commits the new box of every
// animatable element and returns all computed boxes.
func (t *Tree) Apply(d descriptor.Descriptor, viewport layout.Size) map[string]layout.Rect {
	t.root = Build(d, t.content)
	layout.Calculate(t.root, viewport.Width, viewport.Height, t.measurer)
	boxes := t.root.Boxes()
	for _, h := range t.handles {
		if box, ok := boxes[h.ID]; ok {
			h.Commit(box)
		}
	}
	return boxes
}

// Handles returns the permanent handles in paint order.
func (t *Tree) Handles() []*motion.Handle {
	return t.handles
}

// Handle returns the handle of a permanent element.
func (t *Tree) Handle(id string) *motion.Handle {
	return t.byID[id]
}

// Root returns the last computed layout tree.
func (t *Tree) Root() *layout.Node {
	return t.root
}

// Content returns the static content.
func (t *Tree) Content() Content {
	return t.content
}

// fanRest returns the fan's rest boxes relative to the container's
// top-right corner, the corner they are anchored to.
func fanRest(boxes map[string]layout.Rect) []layout.Rect {
	container := boxes[ElementContainer]
	var rest []layout.Rect
	for i := 0; i < FanSize; i++ {
		if b, ok := boxes[FanMemberID(i)]; ok {
			rest = append(rest, b.Translate(-container.Right(), -container.Y))
		}
	}
	return rest
}

// fanAnchor is the top-right corner of the container as drawn at now.
func (t *Tree) fanAnchor(now time.Time) layout.Point {
	box := t.Handle(ElementContainer).VisualBox(now)
	return layout.Point{X: box.Right(), Y: box.Y}
}
