package focus

import "time"

// Restorer is a single-slot focus snapshot: Save records the element that
// currently holds focus, Restore refocuses it. A new Save overwrites the
// previous snapshot; callers needing a stack nest independent Restorers.
// It carries no state machine beyond the presence of a snapshot, so it
// composes underneath higher-level widgets like the trap.
type Restorer struct {
	active  func() Element
	frames  *Frames
	snap    Element
	savedAt time.Time
}

// NewRestorer creates a Restorer. active returns the element that currently
// holds focus anywhere in the host, or nil; frames may be nil for hosts
// with a synchronous post-commit point.
func NewRestorer(active func() Element, frames *Frames) *Restorer {
	return &Restorer{active: active, frames: frames}
}

// Save snapshots the currently focused element. Saving when nothing holds
// focus clears the slot.
func (r *Restorer) Save() {
	r.snap = nil
	if r.active == nil {
		return
	}
	if el := r.active(); el != nil {
		r.snap = el
		r.savedAt = time.Now()
	}
}

// Restore schedules a refocus of the snapshot if it is still focusable,
// then clears the slot unconditionally: a Restore call always consumes the
// snapshot, so calling it again is a no-op. A stale or missing snapshot is
// not an error.
func (r *Restorer) Restore() {
	el := r.snap
	r.snap = nil
	if el == nil {
		return
	}
	r.frames.run(func() {
		if el.CanFocus() {
			el.Focus()
		}
	})
}

// Saved reports whether a snapshot is pending and when it was taken.
func (r *Restorer) Saved() (bool, time.Time) {
	if r.snap == nil {
		return false, time.Time{}
	}
	return true, r.savedAt
}
