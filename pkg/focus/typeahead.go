package focus

import (
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/odvcencio/focuskit/pkg/terminal"
)

// DefaultTypeAheadTimeout is how long the type-ahead buffer survives after
// the last character key.
const DefaultTypeAheadTimeout = 500 * time.Millisecond

// Timer is a cancellable pending expiry. time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// TimerFactory schedules fn after d. Tests install a manual factory to
// drive expiry deterministically.
type TimerFactory func(d time.Duration, fn func()) Timer

func afterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// TypeAheadConfig configures a TypeAhead.
type TypeAheadConfig struct {
	// Timeout is the buffer expiry window. Defaults to
	// DefaultTypeAheadTimeout.
	Timeout time.Duration

	// Label returns the label for an item index. When nil, the registered
	// handle is asserted against Labeled; items with neither never match.
	Label func(index int) string

	// NewTimer overrides the expiry timer source. Defaults to
	// time.AfterFunc.
	NewTimer TimerFactory
}

// TypeAhead layers character-buffered prefix search on top of a Roving
// controller. Printable character keys accumulate into a buffer that
// expires after a timeout; all other keys fall through to the base
// controller unchanged.
type TypeAhead struct {
	roving *Roving
	cfg    TypeAheadConfig

	mu    sync.Mutex
	buf   []rune
	timer Timer
}

// NewTypeAhead wraps a Roving controller.
func NewTypeAhead(r *Roving, cfg TypeAheadConfig) *TypeAhead {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTypeAheadTimeout
	}
	if cfg.NewTimer == nil {
		cfg.NewTimer = afterFunc
	}
	return &TypeAhead{roving: r, cfg: cfg}
}

// HandleKey resolves a key event dispatched by the item at index.
//
// A printable rune with no Ctrl/Alt modifier appends to the buffer,
// restarts the expiry timer, and scans the other items in circular order
// starting past the current one for the first label with the buffer as a
// case-folded prefix. The currently focused item is never matched, so
// repeated presses of the same letter cycle past it. Returns true only when
// focus moved.
func (t *TypeAhead) HandleKey(ev terminal.KeyEvent, index int) bool {
	if ev.Key != terminal.KeyRune || ev.Alt || ev.Ctrl || !unicode.IsPrint(ev.Rune) {
		return t.roving.HandleKey(ev, index)
	}

	t.mu.Lock()
	t.buf = append(t.buf, unicode.ToLower(ev.Rune))
	prefix := string(t.buf)
	t.restartTimerLocked()
	t.mu.Unlock()

	count := t.roving.Count()
	if count == 0 {
		return false
	}
	cur := clampIndex(index, count)
	for off := 1; off < count; off++ {
		i := (cur + off) % count
		if strings.HasPrefix(strings.ToLower(t.label(i)), prefix) {
			t.roving.FocusItem(i)
			return true
		}
	}
	return false
}

// Buffer returns the accumulated search prefix, empty once expired.
func (t *TypeAhead) Buffer() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}

// Close cancels any pending expiry timer and clears the buffer. Hosts call
// it when the owning widget unmounts.
func (t *TypeAhead) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.buf = nil
}

func (t *TypeAhead) label(index int) string {
	if t.cfg.Label != nil {
		return t.cfg.Label(index)
	}
	if l, ok := t.roving.handle(index).(Labeled); ok {
		return l.Label()
	}
	return ""
}

// restartTimerLocked cancels any pending timer and starts a fresh one, so a
// stale expiry can never clear a buffer the user is still extending.
func (t *TypeAhead) restartTimerLocked() {
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = t.cfg.NewTimer(t.cfg.Timeout, t.expire)
}

func (t *TypeAhead) expire() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = nil
	t.timer = nil
}
