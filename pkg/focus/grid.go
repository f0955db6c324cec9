package focus

import (
	"github.com/odvcencio/focuskit/pkg/terminal"
)

// GridConfig configures a Grid navigator. The grid is assumed rectangular;
// callers with ragged data must pad logically.
type GridConfig struct {
	// Rows and Cols are the initial grid dimensions.
	Rows, Cols int

	// InitialRow and InitialCol locate the starting tab stop.
	// Each is clamped to its axis.
	InitialRow, InitialCol int

	// LoopRows wraps Up/Down past the first/last row. LoopCols does the
	// same for Left/Right. The flags are independent: wrap behavior on one
	// axis never affects the other.
	LoopRows, LoopCols bool

	// PageSize is the PageUp/PageDown row stride. Page jumps clamp to the
	// row bounds regardless of LoopRows. Defaults to DefaultPageSize.
	PageSize int

	// Frames defers focus mutations until the host flushes it.
	// Nil runs them immediately.
	Frames *Frames

	// OnCellChange fires whenever the focused cell changes, before the
	// focus mutation itself runs.
	OnCellChange func(row, col int)
}

type cellKey struct {
	row, col int
}

// Grid is the two-dimensional analogue of Roving: exactly one cell is the
// in-sequence focus target, and each axis clamps or loops independently.
type Grid struct {
	cfg        GridConfig
	rows, cols int
	row, col   int
	handles    map[cellKey]Element
}

// NewGrid creates a navigator for a rows x cols matrix.
func NewGrid(cfg GridConfig) *Grid {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	g := &Grid{
		cfg:     cfg,
		rows:    max(cfg.Rows, 0),
		cols:    max(cfg.Cols, 0),
		handles: make(map[cellKey]Element),
	}
	g.row = clampIndex(cfg.InitialRow, g.rows)
	g.col = clampIndex(cfg.InitialCol, g.cols)
	return g
}

// RegisterCell associates a cell with an element handle. A nil handle
// unregisters the cell.
func (g *Grid) RegisterCell(row, col int, el Element) {
	if row < 0 || col < 0 {
		return
	}
	key := cellKey{row, col}
	if el == nil {
		delete(g.handles, key)
		return
	}
	g.handles[key] = el
}

// SetSize updates the grid dimensions and re-clamps the focused cell.
func (g *Grid) SetSize(rows, cols int) {
	g.rows = max(rows, 0)
	g.cols = max(cols, 0)
	g.row = clampIndex(g.row, g.rows)
	g.col = clampIndex(g.col, g.cols)
}

// Position returns the focused cell. Meaningless when the grid is empty.
func (g *Grid) Position() (row, col int) {
	return g.row, g.col
}

// IsTabStop reports whether the cell is the grid's single tab stop.
func (g *Grid) IsTabStop(row, col int) bool {
	return g.rows > 0 && g.cols > 0 && row == g.row && col == g.col
}

// HandleKey resolves a key event dispatched by the cell at (row, col).
// Returns true if the event was consumed. Arrow keys move one cell per
// axis, Home/End jump within the row, Ctrl+Home/Ctrl+End jump to the grid's
// first/last cell, PageUp/PageDown move the row by the configured stride.
func (g *Grid) HandleKey(ev terminal.KeyEvent, row, col int) bool {
	if g.rows == 0 || g.cols == 0 {
		return false
	}
	if ev.Alt {
		return false
	}

	curRow := clampIndex(row, g.rows)
	curCol := clampIndex(col, g.cols)
	nextRow, nextCol := curRow, curCol

	switch ev.Key {
	case terminal.KeyRight:
		if ev.Ctrl {
			return false
		}
		nextCol = stepAxis(curCol, 1, g.cols, g.cfg.LoopCols)
	case terminal.KeyLeft:
		if ev.Ctrl {
			return false
		}
		nextCol = stepAxis(curCol, -1, g.cols, g.cfg.LoopCols)
	case terminal.KeyDown:
		if ev.Ctrl {
			return false
		}
		nextRow = stepAxis(curRow, 1, g.rows, g.cfg.LoopRows)
	case terminal.KeyUp:
		if ev.Ctrl {
			return false
		}
		nextRow = stepAxis(curRow, -1, g.rows, g.cfg.LoopRows)
	case terminal.KeyHome:
		nextCol = 0
		if ev.Ctrl {
			nextRow = 0
		}
	case terminal.KeyEnd:
		nextCol = g.cols - 1
		if ev.Ctrl {
			nextRow = g.rows - 1
		}
	case terminal.KeyPageDown:
		if ev.Ctrl {
			return false
		}
		nextRow = clampIndex(curRow+g.cfg.PageSize, g.rows)
	case terminal.KeyPageUp:
		if ev.Ctrl {
			return false
		}
		nextRow = clampIndex(curRow-g.cfg.PageSize, g.rows)
	default:
		return false
	}

	if nextRow == curRow && nextCol == curCol {
		return false
	}
	g.focusTo(nextRow, nextCol)
	return true
}

// FocusCell moves the tab stop to the cell, clamped per axis, and schedules
// the focus mutation. No-op when the grid is empty.
func (g *Grid) FocusCell(row, col int) {
	if g.rows == 0 || g.cols == 0 {
		return
	}
	g.focusTo(clampIndex(row, g.rows), clampIndex(col, g.cols))
}

func (g *Grid) focusTo(row, col int) {
	oldRow, oldCol := g.row, g.col
	g.row, g.col = row, col
	changed := oldRow != row || oldCol != col
	if changed && g.cfg.OnCellChange != nil {
		g.cfg.OnCellChange(row, col)
	}
	g.cfg.Frames.run(func() {
		if changed {
			if prev := g.handles[cellKey{oldRow, oldCol}]; prev != nil && prev.IsFocused() {
				prev.Blur()
			}
		}
		if el := g.handles[cellKey{row, col}]; el != nil && el.CanFocus() {
			el.Focus()
		}
	})
}

func stepAxis(cur, delta, count int, loop bool) int {
	if loop {
		return (cur + delta + count) % count
	}
	return clampIndex(cur+delta, count)
}
