package interpro

// Node is one accumulated result inside a frame tree: either a leaf holding
// text, or a record holding an attribute map plus ordered child nodes keyed
// by child element name.
type Node struct {
	Text     string
	Attrs    map[string]string
	Children map[string][]*Node

	leaf bool
}

// LeafNode creates a leaf node holding only text.
func LeafNode(text string) *Node {
	return &Node{Text: text, leaf: true}
}

// IsLeaf reports whether the node holds only text.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Attr returns an attribute value, or "" if absent.
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// ChildText returns the text of the first child leaf under name, or "".
func (n *Node) ChildText(name string) string {
	for _, child := range n.Children[name] {
		if child.leaf {
			return child.Text
		}
	}
	return ""
}

// FirstChild returns the first child record under name, or nil.
func (n *Node) FirstChild(name string) *Node {
	for _, child := range n.Children[name] {
		if !child.leaf {
			return child
		}
	}
	return nil
}

// Frame is the transient accumulator for one open element: its name, its
// attributes, and the results of its already-closed children. Frames live on
// the context stack only between the element's open and close events.
type Frame struct {
	Name     string
	Attrs    map[string]string
	Children map[string][]*Node
}

// NewFrame creates a frame for an open element.
func NewFrame(name string, attrs map[string]string) *Frame {
	return &Frame{Name: name, Attrs: attrs}
}

// AppendChild appends a child result under the child's element name.
func (f *Frame) AppendChild(name string, node *Node) {
	if f.Children == nil {
		f.Children = make(map[string][]*Node)
	}
	f.Children[name] = append(f.Children[name], node)
}

// merge turns a popped frame plus its accumulated text into the node that
// joins the parent frame:
//   - attributes and text: record with the text attached as a synthetic
//     "comment" attribute
//   - text only: leaf
//   - attributes only: record as-is
//   - neither: nothing (nil)
func (f *Frame) merge(text string) *Node {
	hasAttrs := len(f.Attrs) > 0
	hasText := text != ""

	switch {
	case hasAttrs && hasText:
		attrs := make(map[string]string, len(f.Attrs)+1)
		for k, v := range f.Attrs {
			attrs[k] = v
		}
		attrs["comment"] = text
		return &Node{Attrs: attrs, Children: f.Children}
	case hasText:
		return LeafNode(text)
	case hasAttrs:
		return &Node{Attrs: f.Attrs, Children: f.Children}
	default:
		return nil
	}
}

// contextStack is the array-backed stack of open-element frames.
type contextStack struct {
	frames []*Frame
}

func (s *contextStack) push(f *Frame) {
	s.frames = append(s.frames, f)
}

func (s *contextStack) pop() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top
}

func (s *contextStack) peek() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

func (s *contextStack) topName() string {
	if top := s.peek(); top != nil {
		return top.Name
	}
	return ""
}

// reset discards all frames; if f is non-nil the stack restarts with it as
// the only frame.
func (s *contextStack) reset(f *Frame) {
	s.frames = s.frames[:0]
	if f != nil {
		s.frames = append(s.frames, f)
	}
}

func (s *contextStack) depth() int {
	return len(s.frames)
}
