package focus

import (
	"github.com/odvcencio/focuskit/pkg/terminal"
)

// DefaultPageSize is the number of items PageUp/PageDown jump by when the
// config does not say otherwise.
const DefaultPageSize = 10

// Orientation selects which arrow keys a roving controller consumes.
type Orientation int

const (
	// OrientBoth handles both arrow axes. Down/Right advance, Up/Left retreat.
	OrientBoth Orientation = iota
	// OrientHorizontal handles Left/Right only.
	OrientHorizontal
	// OrientVertical handles Up/Down only.
	OrientVertical
)

// RovingConfig configures a Roving controller. Every callback field is
// optional; nil callbacks are skipped.
type RovingConfig struct {
	// Count is the initial number of items.
	Count int

	// InitialIndex is the index flagged as the tab stop before any
	// navigation happens. Clamped to [0, Count-1].
	InitialIndex int

	// Orientation selects which arrow keys the controller consumes.
	Orientation Orientation

	// Loop wraps navigation past either end instead of clamping.
	Loop bool

	// HomeEnd enables the Home and End keys.
	HomeEnd bool

	// Paging enables PageUp and PageDown. Page jumps clamp to the ends
	// regardless of Loop.
	Paging bool

	// PageSize is the PageUp/PageDown jump distance. Defaults to
	// DefaultPageSize.
	PageSize int

	// Frames defers focus mutations until the host flushes it.
	// Nil runs them immediately.
	Frames *Frames

	// OnFocusChange fires whenever the focused index changes, before the
	// focus mutation itself runs.
	OnFocusChange func(old, next int)

	// OnTabOut fires when Tab or Shift+Tab is pressed inside the widget.
	// The event is never consumed; the host decides where focus goes.
	OnTabOut func(shift bool)
}

// Roving maintains exactly one in-sequence focus target among a linear set
// of items (the roving tabindex pattern). Items register their element
// handles by index; key events are dispatched from the focused item's own
// handler together with its index.
type Roving struct {
	cfg     RovingConfig
	count   int
	current int
	handles map[int]Element
}

// NewRoving creates a controller for cfg.Count items.
func NewRoving(cfg RovingConfig) *Roving {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	r := &Roving{
		cfg:     cfg,
		count:   cfg.Count,
		handles: make(map[int]Element),
	}
	r.current = clampIndex(cfg.InitialIndex, r.count)
	return r
}

// Register associates index with an element handle. A nil handle
// unregisters the index. Items call this on mount and unmount.
func (r *Roving) Register(index int, el Element) {
	if index < 0 {
		return
	}
	if el == nil {
		delete(r.handles, index)
		return
	}
	r.handles[index] = el
}

// SetCount updates the item count and re-clamps the focused index so a
// shrink never leaves a stale out-of-range tab stop.
func (r *Roving) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	r.count = n
	r.current = clampIndex(r.current, r.count)
}

// Count returns the current item count.
func (r *Roving) Count() int {
	return r.count
}

// Current returns the focused index. Meaningless when Count is zero.
func (r *Roving) Current() int {
	return r.current
}

// IsTabStop reports whether index is the one item reachable through the
// host's ordinary tab order.
func (r *Roving) IsTabStop(index int) bool {
	return r.count > 0 && index == r.current
}

// HandleKey resolves a key event dispatched by the item at index.
// It returns true if the event was consumed, meaning the host must suppress
// its default handling. Events that would not move focus (boundary without
// loop, zero items, unbound keys) are not consumed.
func (r *Roving) HandleKey(ev terminal.KeyEvent, index int) bool {
	if r.count == 0 {
		return false
	}
	if ev.Key == terminal.KeyTab {
		if r.cfg.OnTabOut != nil {
			r.cfg.OnTabOut(ev.Shift)
		}
		return false
	}
	if ev.Alt || ev.Ctrl {
		return false
	}

	cur := clampIndex(index, r.count)
	next := cur

	switch ev.Key {
	case terminal.KeyRight:
		if r.cfg.Orientation == OrientVertical {
			return false
		}
		next = r.step(cur, 1)
	case terminal.KeyLeft:
		if r.cfg.Orientation == OrientVertical {
			return false
		}
		next = r.step(cur, -1)
	case terminal.KeyDown:
		if r.cfg.Orientation == OrientHorizontal {
			return false
		}
		next = r.step(cur, 1)
	case terminal.KeyUp:
		if r.cfg.Orientation == OrientHorizontal {
			return false
		}
		next = r.step(cur, -1)
	case terminal.KeyHome:
		if !r.cfg.HomeEnd {
			return false
		}
		next = 0
	case terminal.KeyEnd:
		if !r.cfg.HomeEnd {
			return false
		}
		next = r.count - 1
	case terminal.KeyPageDown:
		if !r.cfg.Paging {
			return false
		}
		next = clampIndex(cur+r.cfg.PageSize, r.count)
	case terminal.KeyPageUp:
		if !r.cfg.Paging {
			return false
		}
		next = clampIndex(cur-r.cfg.PageSize, r.count)
	default:
		return false
	}

	if next == cur {
		return false
	}
	r.focusTo(next)
	return true
}

// FocusItem moves the tab stop to index, clamped to the valid range, and
// schedules the focus mutation. No-op when the controller is empty.
func (r *Roving) FocusItem(index int) {
	if r.count == 0 {
		return
	}
	r.focusTo(clampIndex(index, r.count))
}

// handle returns the element registered at index, or nil.
func (r *Roving) handle(index int) Element {
	return r.handles[index]
}

func (r *Roving) step(cur, delta int) int {
	if r.cfg.Loop {
		return (cur + delta + r.count) % r.count
	}
	return clampIndex(cur+delta, r.count)
}

// focusTo advances the index state and schedules the focus move. The handle
// is looked up at flush time: if it is gone or unfocusable by then the move
// is skipped while the index state keeps its new value.
func (r *Roving) focusTo(next int) {
	old := r.current
	r.current = next
	if old != next && r.cfg.OnFocusChange != nil {
		r.cfg.OnFocusChange(old, next)
	}
	r.cfg.Frames.run(func() {
		if old != next {
			if prev := r.handles[old]; prev != nil && prev.IsFocused() {
				prev.Blur()
			}
		}
		if el := r.handles[next]; el != nil && el.CanFocus() {
			el.Focus()
		}
	})
}

// clampIndex clamps i to [0, count-1]. Returns 0 when count is zero.
func clampIndex(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i > count-1 {
		return count - 1
	}
	return i
}
