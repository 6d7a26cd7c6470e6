package layout

import "math"

// Calculate lays out the tree rooted at root inside a viewport of the given
// size and stores every node's border box in its Layout field.
//
// A root with a Fill height takes the viewport height; otherwise it sizes to
// its content like any other node.
func Calculate(root *Node, width, height float64, m Measurer) {
	if root == nil {
		return
	}
	if m == nil {
		m = DefaultMeasurer
	}
	c := calc{m: m}
	c.size(root, width)
	if root.Style.Height.IsFill() {
		root.Layout.Height = height
	}
	c.place(root, root.Style.Margin.Left, root.Style.Margin.Top)
}

type calc struct {
	m Measurer
}

// size computes the border-box size of n given the outer space avail
// (margin included) offered by its parent.
func (c calc) size(n *Node, avail float64) {
	s := n.Style
	outer := math.Max(0, avail-s.Margin.Horizontal())

	var width float64
	definite := true
	switch {
	case s.Width.IsPx():
		width = s.Width.Pixels()
	case s.Width.IsFill():
		width = outer
	default:
		definite = false
	}

	inner := outer - s.Padding.Horizontal()
	if definite {
		inner = width - s.Padding.Horizontal()
	}
	inner = math.Max(0, inner)

	var contentW, contentH float64
	if n.Text != "" {
		sz := c.m.MeasureText(n.Text, s.FontSize)
		contentW, contentH = sz.Width, sz.Height
	}
	if flow := n.flowChildren(); len(flow) > 0 {
		cw, ch := c.sizeFlow(n, flow, inner)
		contentW = math.Max(contentW, cw)
		contentH = math.Max(contentH, ch)
	}

	if !definite {
		width = contentW + s.Padding.Horizontal()
	}
	height := contentH + s.Padding.Vertical()
	if s.Height.IsPx() {
		height = s.Height.Pixels()
	}
	n.Layout.Width = width
	n.Layout.Height = height

	for _, child := range n.absoluteChildren() {
		c.size(child, width)
	}
}

// sizeFlow sizes the in-flow children of n within inner pixels of content
// width and returns the content size they occupy.
func (c calc) sizeFlow(n *Node, flow []*Node, inner float64) (float64, float64) {
	gaps := n.Style.Gap * float64(len(flow)-1)

	if n.Style.Direction != Row {
		var w, h float64
		for _, child := range flow {
			c.size(child, inner)
			w = math.Max(w, outerWidth(child))
			h += outerHeight(child)
		}
		return w, h + gaps
	}

	// Row: fixed and auto children first, then fill children share what is left.
	used := gaps
	fills := 0
	for _, child := range flow {
		if child.Style.Width.IsFill() {
			fills++
			continue
		}
		c.size(child, inner)
		used += outerWidth(child)
	}
	if fills > 0 {
		share := math.Max(0, inner-used) / float64(fills)
		for _, child := range flow {
			if child.Style.Width.IsFill() {
				c.size(child, share)
				used += outerWidth(child)
			}
		}
	}
	var h float64
	for _, child := range flow {
		h = math.Max(h, outerHeight(child))
	}
	return used, h
}

// place positions n at (x, y) and recursively places its children.
func (c calc) place(n *Node, x, y float64) {
	n.Layout.X = x
	n.Layout.Y = y
	s := n.Style
	content := n.Layout.Inset(s.Padding)

	if flow := n.flowChildren(); len(flow) > 0 {
		c.placeFlow(n, flow, content)
	}

	for _, child := range n.absoluteChildren() {
		cs := child.Style
		var cx, cy float64
		switch cs.Corner {
		case TopRight:
			cx = n.Layout.Right() - cs.Offset.X - child.Layout.Width
			cy = n.Layout.Y + cs.Offset.Y
		case BottomLeft:
			cx = n.Layout.X + cs.Offset.X
			cy = n.Layout.Bottom() - cs.Offset.Y - child.Layout.Height
		case BottomRight:
			cx = n.Layout.Right() - cs.Offset.X - child.Layout.Width
			cy = n.Layout.Bottom() - cs.Offset.Y - child.Layout.Height
		default:
			cx = n.Layout.X + cs.Offset.X
			cy = n.Layout.Y + cs.Offset.Y
		}
		c.place(child, cx, cy)
	}
}

func (c calc) placeFlow(n *Node, flow []*Node, content Rect) {
	s := n.Style
	isRow := s.Direction == Row

	mainSize, crossSize := content.Height, content.Width
	if isRow {
		mainSize, crossSize = content.Width, content.Height
	}

	used := s.Gap * float64(len(flow)-1)
	for _, child := range flow {
		used += outerMain(child, isRow)
	}
	free := mainSize - used

	pos := justifyOffset(s.Justify, free, len(flow))
	spacing := justifySpacing(s.Justify, free, len(flow))

	for _, child := range flow {
		m := child.Style.Margin
		cross := alignOffset(s.AlignItems, crossSize, outerCross(child, isRow))
		if isRow {
			c.place(child, content.X+pos+m.Left, content.Y+cross+m.Top)
		} else {
			c.place(child, content.X+cross+m.Left, content.Y+pos+m.Top)
		}
		pos += outerMain(child, isRow) + s.Gap + spacing
	}
}

func justifyOffset(j Justify, free float64, count int) float64 {
	if free <= 0 || count == 0 {
		return 0
	}
	switch j {
	case JustifyCenter:
		return free / 2
	case JustifyEnd:
		return free
	default:
		return 0
	}
}

func justifySpacing(j Justify, free float64, count int) float64 {
	if free <= 0 || count <= 1 {
		return 0
	}
	if j == JustifySpaceBetween {
		return free / float64(count-1)
	}
	return 0
}

func alignOffset(a Align, crossSize, itemSize float64) float64 {
	switch a {
	case AlignCenter:
		return (crossSize - itemSize) / 2
	case AlignEnd:
		return crossSize - itemSize
	default:
		return 0
	}
}

func outerWidth(n *Node) float64  { return n.Layout.Width + n.Style.Margin.Horizontal() }
func outerHeight(n *Node) float64 { return n.Layout.Height + n.Style.Margin.Vertical() }

func outerMain(n *Node, isRow bool) float64 {
	if isRow {
		return outerWidth(n)
	}
	return outerHeight(n)
}

func outerCross(n *Node, isRow bool) float64 {
	if isRow {
		return outerHeight(n)
	}
	return outerWidth(n)
}
