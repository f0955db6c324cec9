package focus

// Frames queues focus mutations until the host commits a frame.
//
// Moving real input focus is deferred so the target element is guaranteed to
// be mounted and laid out first. Hosts that re-render after handling input
// call Flush once the new frame is committed. Hosts with a synchronous
// post-commit point may pass a nil *Frames to the controllers, in which case
// mutations run immediately.
type Frames struct {
	pending []func()
}

// Defer queues fn to run on the next Flush.
func (f *Frames) Defer(fn func()) {
	f.pending = append(f.pending, fn)
}

// Flush runs all queued mutations in order and clears the queue.
// Mutations queued while flushing run on the next Flush.
func (f *Frames) Flush() {
	pending := f.pending
	f.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// Len returns the number of queued mutations.
func (f *Frames) Len() int {
	return len(f.pending)
}

// run executes fn through the queue, or immediately when f is nil.
func (f *Frames) run(fn func()) {
	if f == nil {
		fn()
		return
	}
	f.Defer(fn)
}
