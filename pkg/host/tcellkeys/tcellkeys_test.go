package tcellkeys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/focuskit/pkg/terminal"
)

func TestConvert_SpecialKeys(t *testing.T) {
	cases := []struct {
		name string
		in   tcell.Key
		want terminal.Key
	}{
		{"up", tcell.KeyUp, terminal.KeyUp},
		{"down", tcell.KeyDown, terminal.KeyDown},
		{"left", tcell.KeyLeft, terminal.KeyLeft},
		{"right", tcell.KeyRight, terminal.KeyRight},
		{"home", tcell.KeyHome, terminal.KeyHome},
		{"end", tcell.KeyEnd, terminal.KeyEnd},
		{"pgup", tcell.KeyPgUp, terminal.KeyPageUp},
		{"pgdn", tcell.KeyPgDn, terminal.KeyPageDown},
		{"tab", tcell.KeyTab, terminal.KeyTab},
		{"escape", tcell.KeyEscape, terminal.KeyEscape},
		{"enter", tcell.KeyEnter, terminal.KeyEnter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := Convert(tcell.NewEventKey(tc.in, 0, tcell.ModNone))
			require.True(t, ok)
			assert.Equal(t, tc.want, ev.Key)
		})
	}
}

func TestConvert_Rune(t *testing.T) {
	ev, ok := Convert(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	require.True(t, ok)
	assert.Equal(t, terminal.KeyRune, ev.Key)
	assert.Equal(t, 'q', ev.Rune)
}

func TestConvert_Backtab(t *testing.T) {
	ev, ok := Convert(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))

	require.True(t, ok)
	assert.Equal(t, terminal.KeyTab, ev.Key)
	assert.True(t, ev.Shift)
}

func TestConvert_Modifiers(t *testing.T) {
	ev, ok := Convert(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModCtrl))
	require.True(t, ok)
	assert.True(t, ev.Ctrl)
	assert.False(t, ev.Alt)

	ev, ok = Convert(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModShift))
	require.True(t, ok)
	assert.True(t, ev.Shift)
}

func TestConvert_OutOfVocabulary(t *testing.T) {
	_, ok := Convert(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	assert.False(t, ok)

	_, ok = Convert(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	assert.False(t, ok)
}
