// Package focus implements keyboard navigation and focus management for
// composite widgets: a roving-index controller with a type-ahead extension,
// a two-dimensional grid navigator, a focus trap, and a focus save/restore
// primitive.
//
// The package has no opinion about how elements are rendered. Hosts register
// opaque element handles and route key events in; the engine decides which
// element should hold focus next and imperatively moves focus there.
package focus

// Element is a handle to a UI element that can receive input focus.
//
// The engine never owns elements. A registered handle may become invalid
// (removed from the tree, disabled) at any time; CanFocus is consulted
// immediately before every use and a handle that reports false is skipped.
type Element interface {
	// CanFocus returns true if the element can currently receive focus.
	// Disabled and unrendered elements report false.
	CanFocus() bool

	// Focus is called when the element gains focus.
	Focus()

	// Blur is called when the element loses focus.
	Blur()

	// IsFocused returns true if the element currently has focus.
	IsFocused() bool
}

// Labeled is implemented by elements that carry a text label.
// The type-ahead extension matches typed characters against it.
type Labeled interface {
	Label() string
}

// Node is one node of a host toolkit's element tree. The focus trap walks
// Node trees to discover focusable descendants; it is the only part of the
// engine that sees structure rather than pre-registered handles.
type Node interface {
	Children() []Node
}
