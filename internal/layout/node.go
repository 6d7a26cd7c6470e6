package layout

// Node is one box in the layout tree. Text nodes are leaves measured by a
// Measurer; Layout is filled in by Calculate.
type Node struct {
	ID       string
	Style    Style
	Text     string
	Children []*Node

	Layout Rect
}

// NewNode creates a container node.
func NewNode(id string, style Style, children ...*Node) *Node {
	return &Node{ID: id, Style: style, Children: children}
}

// NewText creates a text leaf.
func NewText(id, text string, style Style) *Node {
	return &Node{ID: id, Style: style, Text: text}
}

// Walk visits n and its descendants depth-first, parents before children.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node with the given id, or nil.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) {
		if found == nil && c.ID == id {
			found = c
		}
	})
	return found
}

// Boxes returns the computed box of every node that has an id.
func (n *Node) Boxes() map[string]Rect {
	out := make(map[string]Rect)
	n.Walk(func(c *Node) {
		if c.ID != "" {
			out[c.ID] = c.Layout
		}
	})
	return out
}

func (n *Node) flowChildren() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if !c.Style.Absolute {
			out = append(out, c)
		}
	}
	return out
}

func (n *Node) absoluteChildren() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Style.Absolute {
			out = append(out, c)
		}
	}
	return out
}
