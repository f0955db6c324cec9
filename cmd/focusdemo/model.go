package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/odvcencio/focuskit/pkg/focus"
	"github.com/odvcencio/focuskit/pkg/host/teakeys"
	"github.com/odvcencio/focuskit/pkg/terminal"
)

const gridCols = 4

type pane int

const (
	paneList pane = iota
	paneGrid
)

type keyMap struct {
	OpenDialog key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		OpenDialog: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open dialog")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// session holds state mutated by engine callbacks. It lives behind a
// pointer so the callbacks stay valid across bubbletea's value-copied
// model updates.
type session struct {
	switchPane  bool
	closeDialog bool
}

type model struct {
	keys    keyMap
	log     zerolog.Logger
	session *session

	frames *focus.Frames

	// Customer list: roving + type-ahead.
	items  []*item
	roving *focus.Roving
	search *focus.TypeAhead

	// Health board: grid navigator.
	cells [][]*item
	grid  *focus.Grid

	// Modal dialog: trap + save/restore + its own roving controller.
	dialog     *dialog
	trap       *focus.Trap
	restorer   *focus.Restorer
	dialogRove *focus.Roving

	activePane pane
	dialogOpen bool
}

func newModel(log zerolog.Logger) model {
	sess := &session{}
	frames := &focus.Frames{}

	names := []string{
		"Acme Industrial", "Brightline Health", "Cascade Freight",
		"Dunmore Retail", "Evergreen Labs", "Fairbank Logistics",
		"Granite Capital", "Harborview Media",
	}
	items := lo.Map(names, func(name string, _ int) *item {
		return newItem(name)
	})

	m := model{
		keys:    defaultKeyMap(),
		log:     log,
		session: sess,
		frames:  frames,
		items:   items,
		dialog:  newDialog("Acknowledge", "Snooze", "Escalate"),
	}

	m.roving = focus.NewRoving(focus.RovingConfig{
		Count:       len(items),
		Orientation: focus.OrientVertical,
		HomeEnd:     true,
		Paging:      true,
		PageSize:    4,
		Frames:      frames,
		OnFocusChange: func(old, next int) {
			log.Debug().Int("old", old).Int("next", next).Msg("list focus changed")
		},
		OnTabOut: func(shift bool) {
			sess.switchPane = true
		},
	})
	for i, it := range items {
		m.roving.Register(i, it)
	}
	m.search = focus.NewTypeAhead(m.roving, focus.TypeAheadConfig{
		Label: func(i int) string { return items[i].label },
	})

	m.cells = lo.RepeatBy(gridCols, func(row int) []*item {
		return lo.RepeatBy(gridCols, func(col int) *item {
			return newItem(fmt.Sprintf("%c%d", 'A'+row, col+1))
		})
	})
	m.grid = focus.NewGrid(focus.GridConfig{
		Rows:     gridCols,
		Cols:     gridCols,
		LoopCols: true,
		Frames:   frames,
		OnCellChange: func(row, col int) {
			log.Debug().Int("row", row).Int("col", col).Msg("grid cell changed")
		},
	})
	for r, row := range m.cells {
		for c, cell := range row {
			m.grid.RegisterCell(r, c, cell)
		}
	}

	m.restorer = focus.NewRestorer(m.activeElement, frames)
	m.trap = focus.NewTrap(focus.TrapConfig{
		Root:   m.dialog,
		Active: m.activeElement,
		Frames: frames,
		OnDeactivate: func() {
			sess.closeDialog = true
		},
	})
	m.dialogRove = focus.NewRoving(focus.RovingConfig{
		Count:       len(m.dialog.buttons),
		Orientation: focus.OrientHorizontal,
		Loop:        true,
		Frames:      frames,
	})
	for i, b := range m.dialog.buttons {
		m.dialogRove.Register(i, b)
	}

	// Seed focus on the first list item.
	items[0].Focus()
	return m
}

// activeElement is the host-side "currently focused element" query the trap
// and restorer consult.
func (m model) activeElement() focus.Element {
	for _, it := range m.items {
		if it.IsFocused() {
			return it
		}
	}
	for _, row := range m.cells {
		for _, cell := range row {
			if cell.IsFocused() {
				return cell
			}
		}
	}
	for _, b := range m.dialog.buttons {
		if b.IsFocused() {
			return b
		}
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.OpenDialog):
		if !m.dialogOpen {
			m.openDialog()
		}
		m.frames.Flush()
		return m, nil
	}

	ev, ok := teakeys.Convert(keyMsg)
	if !ok {
		return m, nil
	}

	if m.dialogOpen {
		if !m.trap.HandleKey(ev) {
			if ev.Key == terminal.KeyTab {
				// The trap only intercepts Tab at the boundaries; this
				// stands in for the host's default traversal.
				m.hostTab(ev.Shift)
			} else {
				m.dialogRove.HandleKey(ev, m.focusedButton())
			}
		}
		if m.session.closeDialog {
			m.session.closeDialog = false
			m.closeDialog()
		}
		m.frames.Flush()
		return m, nil
	}

	switch m.activePane {
	case paneList:
		m.search.HandleKey(ev, m.roving.Current())
	case paneGrid:
		if ev.Key == terminal.KeyTab {
			m.session.switchPane = true
			break
		}
		row, col := m.grid.Position()
		m.grid.HandleKey(ev, row, col)
	}

	if m.session.switchPane {
		m.session.switchPane = false
		m.togglePane()
	}

	// Focus mutations land once the update is committed, right before the
	// next View.
	m.frames.Flush()
	return m, nil
}

func (m *model) openDialog() {
	m.log.Debug().Msg("dialog opened")
	m.restorer.Save()
	m.trap.Activate()
	m.dialogOpen = true
}

func (m *model) closeDialog() {
	m.log.Debug().Msg("dialog closed")
	m.trap.Deactivate()
	// The dialog unmounts with the trap; its focus goes with it.
	for _, btn := range m.dialog.buttons {
		if btn.IsFocused() {
			btn.Blur()
		}
	}
	m.restorer.Restore()
	m.dialogOpen = false
}

func (m model) focusedButton() int {
	for i, b := range m.dialog.buttons {
		if b.IsFocused() {
			return i
		}
	}
	return m.dialogRove.Current()
}

func (m *model) hostTab(shift bool) {
	cur := m.focusedButton()
	next := cur + 1
	if shift {
		next = cur - 1
	}
	if next >= 0 && next < len(m.dialog.buttons) {
		m.dialogRove.FocusItem(next)
	}
}

func (m *model) togglePane() {
	if el := m.activeElement(); el != nil {
		el.Blur()
	}
	if m.activePane == paneList {
		m.activePane = paneGrid
		row, col := m.grid.Position()
		m.grid.FocusCell(row, col)
	} else {
		m.activePane = paneList
		m.roving.FocusItem(m.roving.Current())
	}
	m.log.Debug().Int("pane", int(m.activePane)).Msg("pane switched")
}

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	activePaneStyle = paneStyle.
			BorderForeground(lipgloss.Color("63"))
	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 2)
)

func (m model) View() string {
	list := m.renderList()
	board := m.renderGrid()

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", board)
	footer := dimStyle.Render("tab: switch pane | type to search | ctrl+o: dialog | ctrl+c: quit")

	out := lipgloss.JoinVertical(lipgloss.Left, body, footer)
	if m.dialogOpen {
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.renderDialog())
	}
	return out
}

func (m model) renderList() string {
	var b strings.Builder
	b.WriteString("Customers\n")
	for i, it := range m.items {
		line := it.label
		if m.roving.IsTabStop(i) {
			line = focusedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if buf := m.search.Buffer(); buf != "" {
		b.WriteString(dimStyle.Render("/" + buf))
	}
	return m.paneBorder(paneList).Render(b.String())
}

func (m model) renderGrid() string {
	var b strings.Builder
	b.WriteString("Health board\n")
	for r, row := range m.cells {
		labels := make([]string, len(row))
		for c, cell := range row {
			label := cell.label
			if m.grid.IsTabStop(r, c) {
				label = focusedStyle.Render(label)
			}
			labels[c] = label
		}
		b.WriteString(strings.Join(labels, " "))
		b.WriteByte('\n')
	}
	return m.paneBorder(paneGrid).Render(b.String())
}

func (m model) renderDialog() string {
	labels := make([]string, len(m.dialog.buttons))
	for i, btn := range m.dialog.buttons {
		label := "[ " + btn.label + " ]"
		if btn.IsFocused() {
			label = focusedStyle.Render(label)
		}
		labels[i] = label
	}
	content := "Alert triage\n\n" + strings.Join(labels, "  ") +
		"\n\n" + dimStyle.Render("esc: close")
	return dialogStyle.Render(content)
}

func (m model) paneBorder(p pane) lipgloss.Style {
	if m.activePane == p && !m.dialogOpen {
		return activePaneStyle
	}
	return paneStyle
}
