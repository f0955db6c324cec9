// Package terminal provides the toolkit-neutral input event types consumed
// by the focus engine. Host adapters (see pkg/host) translate their
// toolkit's native events into these.
package terminal

// Event represents an input event.
type Event interface {
	eventMarker()
}

// KeyEvent represents a key press.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) eventMarker() {}

// Key represents special keys.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // Regular character
	KeyEnter
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyNames = map[Key]string{
	KeyNone:     "none",
	KeyRune:     "rune",
	KeyEnter:    "enter",
	KeyTab:      "tab",
	KeyEscape:   "escape",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "pageup",
	KeyPageDown: "pagedown",
}

// String returns a human-readable key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyPress builds a KeyEvent for a special key.
func KeyPress(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// RunePress builds a KeyEvent for a regular character.
func RunePress(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}
