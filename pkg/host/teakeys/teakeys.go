// Package teakeys translates bubbletea key messages into the engine's
// toolkit-neutral key events.
package teakeys

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/odvcencio/focuskit/pkg/terminal"
)

var special = map[tea.KeyType]terminal.KeyEvent{
	tea.KeyEnter:    {Key: terminal.KeyEnter},
	tea.KeyTab:      {Key: terminal.KeyTab},
	tea.KeyShiftTab: {Key: terminal.KeyTab, Shift: true},
	tea.KeyEsc:      {Key: terminal.KeyEscape},
	tea.KeyUp:       {Key: terminal.KeyUp},
	tea.KeyDown:     {Key: terminal.KeyDown},
	tea.KeyLeft:     {Key: terminal.KeyLeft},
	tea.KeyRight:    {Key: terminal.KeyRight},
	tea.KeyHome:     {Key: terminal.KeyHome},
	tea.KeyEnd:      {Key: terminal.KeyEnd},
	tea.KeyCtrlHome: {Key: terminal.KeyHome, Ctrl: true},
	tea.KeyCtrlEnd:  {Key: terminal.KeyEnd, Ctrl: true},
	tea.KeyPgUp:     {Key: terminal.KeyPageUp},
	tea.KeyPgDown:   {Key: terminal.KeyPageDown},
	tea.KeySpace:    {Key: terminal.KeyRune, Rune: ' '},
}

// Convert translates a bubbletea key message. ok is false for messages
// outside the engine's vocabulary, including multi-rune paste input.
func Convert(msg tea.KeyMsg) (terminal.KeyEvent, bool) {
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return terminal.KeyEvent{}, false
		}
		return terminal.KeyEvent{
			Key:  terminal.KeyRune,
			Rune: msg.Runes[0],
			Alt:  msg.Alt,
		}, true
	}

	ev, found := special[msg.Type]
	if !found {
		return terminal.KeyEvent{}, false
	}
	ev.Alt = ev.Alt || msg.Alt
	return ev, true
}
