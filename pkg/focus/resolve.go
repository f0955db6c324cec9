package focus

// Resolve returns the focusable elements under root in document order.
//
// A node is included when it implements Element and currently reports
// CanFocus. The container itself is never included. This is a pure query
// with no side effects; the focus trap re-runs it on activation and after
// every Tab press, so focusables added or removed while a trap is open are
// picked up.
func Resolve(root Node) []Element {
	if root == nil {
		return nil
	}
	var out []Element
	for _, child := range root.Children() {
		collect(child, &out)
	}
	return out
}

func collect(n Node, out *[]Element) {
	if n == nil {
		return
	}
	if el, ok := n.(Element); ok && el.CanFocus() {
		*out = append(*out, el)
	}
	for _, child := range n.Children() {
		collect(child, out)
	}
}
