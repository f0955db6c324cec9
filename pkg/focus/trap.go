package focus

import (
	"github.com/odvcencio/focuskit/pkg/terminal"
)

// TrapConfig configures a Trap.
type TrapConfig struct {
	// Root is the subtree focus is confined to. Trapped content is
	// arbitrary, so focusables are discovered by structural query rather
	// than registration.
	Root Node

	// Active returns the element that currently holds focus anywhere in
	// the host, or nil. The trap uses it to capture the element to return
	// focus to, and to blur drifted focus before snapping it back.
	Active func() Element

	// InitialFocus selects the element focused on activation. When nil, or
	// when no resolved element matches, the first focusable element is
	// used.
	InitialFocus func(Element) bool

	// ReturnFocus refocuses the element captured at activation when the
	// trap deactivates, provided it is still focusable.
	ReturnFocus bool

	// Frames defers focus mutations until the host flushes it.
	// Nil runs them immediately.
	Frames *Frames

	// OnActivate fires after activation completes.
	OnActivate func()

	// OnDeactivate fires when Escape is pressed while the trap is active.
	// The trap does not deactivate itself; the host reacts, typically by
	// closing the dialog and calling Deactivate.
	OnDeactivate func()
}

// Trap confines tab-cycling within a subtree. While active it wraps
// Tab/Shift+Tab at the subtree's boundaries and snaps focus back inside if
// an outside actor steals it.
type Trap struct {
	cfg      TrapConfig
	active   bool
	previous Element
}

// NewTrap creates an inactive trap.
func NewTrap(cfg TrapConfig) *Trap {
	return &Trap{cfg: cfg}
}

// IsActive reports whether the trap is active.
func (t *Trap) IsActive() bool {
	return t.active
}

// Activate captures the currently focused element, resolves the focusable
// set inside the root, and focuses the initial target. An empty set forces
// no focus; Tab handling re-resolves on every press, so content that mounts
// later still becomes trappable. Activating an active trap is a no-op.
func (t *Trap) Activate() {
	if t.active {
		return
	}
	t.active = true
	if t.cfg.Active != nil {
		t.previous = t.cfg.Active()
	}

	els := Resolve(t.cfg.Root)
	if target := t.initialTarget(els); target != nil {
		t.moveFocus(t.previous, target)
	}
	if t.cfg.OnActivate != nil {
		t.cfg.OnActivate()
	}
}

// Deactivate tears the trap down. When ReturnFocus is set and the captured
// element is still focusable it is refocused; otherwise focus stays where
// it is. Deactivating an inactive trap is a no-op.
func (t *Trap) Deactivate() {
	if !t.active {
		return
	}
	t.active = false
	prev := t.previous
	t.previous = nil

	if t.cfg.ReturnFocus && prev != nil {
		var from Element
		if t.cfg.Active != nil {
			from = t.cfg.Active()
		}
		t.cfg.Frames.run(func() {
			if !prev.CanFocus() {
				return
			}
			if from != nil && from != prev && from.IsFocused() {
				from.Blur()
			}
			prev.Focus()
		})
	}
}

// HandleKey intercepts keys while the trap is active.
//
// Escape fires OnDeactivate and is consumed when a callback is configured.
// Tab and Shift+Tab re-resolve the focusable set: at the last element Tab
// wraps to the first, at the first element Shift+Tab wraps to the last, and
// focus found outside the subtree entirely is snapped back to the first or
// last element depending on shift state. Mid-list Tab presses are not
// consumed; the host's own traversal handles them.
func (t *Trap) HandleKey(ev terminal.KeyEvent) bool {
	if !t.active {
		return false
	}

	switch ev.Key {
	case terminal.KeyEscape:
		if t.cfg.OnDeactivate == nil {
			return false
		}
		t.cfg.OnDeactivate()
		return true

	case terminal.KeyTab:
		els := Resolve(t.cfg.Root)
		if len(els) == 0 {
			// Nothing to cycle through, but still swallow the key so
			// focus cannot tab out of the trap.
			return true
		}

		cur := focusedIndex(els)
		if cur == -1 {
			// Drift defense: focus escaped the subtree.
			target := els[0]
			if ev.Shift {
				target = els[len(els)-1]
			}
			var from Element
			if t.cfg.Active != nil {
				from = t.cfg.Active()
			}
			t.moveFocus(from, target)
			return true
		}

		if !ev.Shift && cur == len(els)-1 {
			t.moveFocus(els[cur], els[0])
			return true
		}
		if ev.Shift && cur == 0 {
			t.moveFocus(els[0], els[len(els)-1])
			return true
		}
		return false
	}

	return false
}

func (t *Trap) initialTarget(els []Element) Element {
	if len(els) == 0 {
		return nil
	}
	if t.cfg.InitialFocus != nil {
		for _, el := range els {
			if t.cfg.InitialFocus(el) {
				return el
			}
		}
	}
	return els[0]
}

// moveFocus schedules a blur-then-focus pair. Both ends are re-validated at
// flush time.
func (t *Trap) moveFocus(from, to Element) {
	t.cfg.Frames.run(func() {
		if from != nil && from != to && from.IsFocused() {
			from.Blur()
		}
		if to != nil && to.CanFocus() {
			to.Focus()
		}
	})
}

func focusedIndex(els []Element) int {
	for i, el := range els {
		if el.IsFocused() {
			return i
		}
	}
	return -1
}
