package focus

// fakeElement is a test element that doubles as a tree node.
type fakeElement struct {
	id       string
	canFocus bool
	focused  bool
	label    string
	children []Node
}

func newFakeElement(id string) *fakeElement {
	return &fakeElement{id: id, canFocus: true}
}

func (e *fakeElement) CanFocus() bool  { return e.canFocus }
func (e *fakeElement) Focus()          { e.focused = true }
func (e *fakeElement) Blur()           { e.focused = false }
func (e *fakeElement) IsFocused() bool { return e.focused }
func (e *fakeElement) Label() string   { return e.label }
func (e *fakeElement) Children() []Node {
	return e.children
}

// containerNode is a non-focusable structural node.
type containerNode struct {
	children []Node
}

func (c *containerNode) Children() []Node { return c.children }
