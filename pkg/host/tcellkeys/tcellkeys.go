// Package tcellkeys translates tcell key events into the engine's
// toolkit-neutral key events.
package tcellkeys

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/focuskit/pkg/terminal"
)

var special = map[tcell.Key]terminal.Key{
	tcell.KeyEnter:  terminal.KeyEnter,
	tcell.KeyTab:    terminal.KeyTab,
	tcell.KeyEscape: terminal.KeyEscape,
	tcell.KeyUp:     terminal.KeyUp,
	tcell.KeyDown:   terminal.KeyDown,
	tcell.KeyLeft:   terminal.KeyLeft,
	tcell.KeyRight:  terminal.KeyRight,
	tcell.KeyHome:   terminal.KeyHome,
	tcell.KeyEnd:    terminal.KeyEnd,
	tcell.KeyPgUp:   terminal.KeyPageUp,
	tcell.KeyPgDn:   terminal.KeyPageDown,
}

// Convert translates a tcell key event. ok is false for keys outside the
// engine's vocabulary (function keys, control chords, and so on).
func Convert(ev *tcell.EventKey) (terminal.KeyEvent, bool) {
	mods := ev.Modifiers()
	out := terminal.KeyEvent{
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = terminal.KeyRune
		out.Rune = ev.Rune()
		return out, true
	case tcell.KeyBacktab:
		// tcell reports Shift+Tab as its own key.
		out.Key = terminal.KeyTab
		out.Shift = true
		return out, true
	}

	if k, found := special[ev.Key()]; found {
		out.Key = k
		return out, true
	}
	return terminal.KeyEvent{}, false
}
