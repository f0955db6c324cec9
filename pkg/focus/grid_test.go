package focus

import (
	"testing"

	"github.com/odvcencio/focuskit/pkg/terminal"
)

func gridAt(t *testing.T, g *Grid, row, col int) {
	t.Helper()
	r, c := g.Position()
	if r != row || c != col {
		t.Fatalf("Position() = (%d, %d), want (%d, %d)", r, c, row, col)
	}
}

func TestGrid_ArrowsMoveOneCellPerAxis(t *testing.T) {
	g := NewGrid(GridConfig{Rows: 3, Cols: 4})

	if !g.HandleKey(terminal.KeyPress(terminal.KeyRight), 0, 0) {
		t.Error("Right should be consumed")
	}
	gridAt(t, g, 0, 1)

	if !g.HandleKey(terminal.KeyPress(terminal.KeyDown), 0, 1) {
		t.Error("Down should be consumed")
	}
	gridAt(t, g, 1, 1)

	g.HandleKey(terminal.KeyPress(terminal.KeyLeft), 1, 1)
	gridAt(t, g, 1, 0)

	g.HandleKey(terminal.KeyPress(terminal.KeyUp), 1, 0)
	gridAt(t, g, 0, 0)
}

func TestGrid_BoundaryWithoutLoopNotConsumed(t *testing.T) {
	g := NewGrid(GridConfig{Rows: 2, Cols: 2})

	if g.HandleKey(terminal.KeyPress(terminal.KeyLeft), 0, 0) {
		t.Error("Left at column 0 should not be consumed")
	}
	if g.HandleKey(terminal.KeyPress(terminal.KeyUp), 0, 0) {
		t.Error("Up at row 0 should not be consumed")
	}
	gridAt(t, g, 0, 0)
}

func TestGrid_AxisLoopIndependence(t *testing.T) {
	// Looping columns must not affect row wrap behavior.
	g := NewGrid(GridConfig{Rows: 2, Cols: 3, LoopCols: true})

	if !g.HandleKey(terminal.KeyPress(terminal.KeyLeft), 0, 0) {
		t.Error("Left at column 0 should wrap with LoopCols")
	}
	gridAt(t, g, 0, 2)

	if g.HandleKey(terminal.KeyPress(terminal.KeyUp), 0, 2) {
		t.Error("Up at row 0 should still clamp without LoopRows")
	}
	gridAt(t, g, 0, 2)

	// And the other way around.
	g2 := NewGrid(GridConfig{Rows: 2, Cols: 3, LoopRows: true})

	if !g2.HandleKey(terminal.KeyPress(terminal.KeyUp), 0, 0) {
		t.Error("Up at row 0 should wrap with LoopRows")
	}
	gridAt(t, g2, 1, 0)

	if g2.HandleKey(terminal.KeyPress(terminal.KeyLeft), 1, 0) {
		t.Error("Left at column 0 should still clamp without LoopCols")
	}
	gridAt(t, g2, 1, 0)
}

func TestGrid_HomeEndRowLocal(t *testing.T) {
	g := NewGrid(GridConfig{Rows: 3, Cols: 5, InitialRow: 1, InitialCol: 2})

	if !g.HandleKey(terminal.KeyPress(terminal.KeyEnd), 1, 2) {
		t.Error("End should be consumed")
	}
	gridAt(t, g, 1, 4)

	g.HandleKey(terminal.KeyPress(terminal.KeyHome), 1, 4)
	gridAt(t, g, 1, 0)
}

func TestGrid_CtrlHomeEndGridGlobal(t *testing.T) {
	g := NewGrid(GridConfig{Rows: 3, Cols: 5, InitialRow: 1, InitialCol: 2})

	if !g.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnd, Ctrl: true}, 1, 2) {
		t.Error("Ctrl+End should be consumed")
	}
	gridAt(t, g, 2, 4)

	g.HandleKey(terminal.KeyEvent{Key: terminal.KeyHome, Ctrl: true}, 2, 4)
	gridAt(t, g, 0, 0)
}

func TestGrid_PagingClampsRow(t *testing.T) {
	g := NewGrid(GridConfig{Rows: 25, Cols: 2})

	g.HandleKey(terminal.KeyPress(terminal.KeyPageDown), 0, 0)
	gridAt(t, g, 10, 0)

	g.HandleKey(terminal.KeyPress(terminal.KeyPageDown), 10, 0)
	g.HandleKey(terminal.KeyPress(terminal.KeyPageDown), 20, 0)
	gridAt(t, g, 24, 0)

	// Paging never loops, even with LoopRows.
	looped := NewGrid(GridConfig{Rows: 25, Cols: 2, LoopRows: true, InitialRow: 20})
	looped.HandleKey(terminal.KeyPress(terminal.KeyPageDown), 20, 0)
	gridAt(t, looped, 24, 0)
}

func TestGrid_EmptyIsNoOp(t *testing.T) {
	g := NewGrid(GridConfig{Rows: 0, Cols: 3})

	if g.HandleKey(terminal.KeyPress(terminal.KeyRight), 0, 0) {
		t.Error("no event should be consumed with zero rows")
	}
	if g.IsTabStop(0, 0) {
		t.Error("nothing is a tab stop in an empty grid")
	}
}

func TestGrid_SingleTabStop(t *testing.T) {
	g := NewGrid(GridConfig{Rows: 3, Cols: 3, LoopRows: true, LoopCols: true})

	keys := []terminal.Key{terminal.KeyRight, terminal.KeyDown, terminal.KeyLeft, terminal.KeyUp}
	for _, k := range keys {
		row, col := g.Position()
		g.HandleKey(terminal.KeyPress(k), row, col)

		stops := 0
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if g.IsTabStop(r, c) {
					stops++
				}
			}
		}
		if stops != 1 {
			t.Fatalf("tab stop count = %d, want exactly 1", stops)
		}
	}
}

func TestGrid_SetSizeReclamps(t *testing.T) {
	g := NewGrid(GridConfig{Rows: 5, Cols: 5, InitialRow: 4, InitialCol: 4})

	g.SetSize(2, 3)

	gridAt(t, g, 1, 2)
}

func TestGrid_OnCellChange(t *testing.T) {
	var gotRow, gotCol int
	calls := 0
	g := NewGrid(GridConfig{
		Rows: 2, Cols: 2,
		OnCellChange: func(row, col int) {
			gotRow, gotCol = row, col
			calls++
		},
	})

	g.HandleKey(terminal.KeyPress(terminal.KeyRight), 0, 0)

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if gotRow != 0 || gotCol != 1 {
		t.Errorf("OnCellChange(%d, %d), want (0, 1)", gotRow, gotCol)
	}
}

func TestGrid_FocusDeferredUntilFlush(t *testing.T) {
	var frames Frames
	g := NewGrid(GridConfig{Rows: 2, Cols: 2, Frames: &frames})
	a := newFakeElement("a")
	b := newFakeElement("b")
	a.focused = true
	g.RegisterCell(0, 0, a)
	g.RegisterCell(0, 1, b)

	g.HandleKey(terminal.KeyPress(terminal.KeyRight), 0, 0)

	if b.focused {
		t.Fatal("b should not be focused before Flush")
	}

	frames.Flush()

	if !b.focused {
		t.Error("b should be focused after Flush")
	}
	if a.focused {
		t.Error("a should be blurred after Flush")
	}
}

func TestGrid_MissingHandleStillAdvances(t *testing.T) {
	g := NewGrid(GridConfig{Rows: 2, Cols: 2})

	if !g.HandleKey(terminal.KeyPress(terminal.KeyDown), 0, 0) {
		t.Error("event should be consumed even with no registered handles")
	}
	gridAt(t, g, 1, 0)
}
