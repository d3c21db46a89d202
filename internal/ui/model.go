package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/session"
)

type mode int

const (
	modeBoard mode = iota
	modeDrag
	modeForm
	modeConfirm
)

// drag is the card being carried. It exists only between pick-up and drop.
type drag struct {
	column string
	index  int
	task   board.Task
}

type confirmation struct {
	prompt string
	cmd    session.Command
	done   string
}

type model struct {
	ctx  context.Context
	sess *session.Session

	board board.Board
	col   int // cursor column
	row   int // cursor card, or drop index while dragging

	mode    mode
	drag    *drag
	form    *form
	confirm *confirmation

	message  string
	err      error
	showHelp bool
	width    int
	height   int
	quitting bool
}

func newModel(ctx context.Context, sess *session.Session) *model {
	m := &model{ctx: ctx, sess: sess}
	m.reload()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeDrag:
			return m.updateDrag(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBoard(msg)
		}
	}
	if m.mode == modeForm && m.form != nil {
		return m, m.form.edit(msg)
	}
	return m, nil
}

func (m *model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	m.err = nil

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "esc":
		m.showHelp = false
	case "left", "h":
		m.moveColumn(-1)
	case "right", "l":
		m.moveColumn(1)
	case "up", "k":
		m.moveRow(-1)
	case "down", "j":
		m.moveRow(1)
	case " ", "space", "m":
		m.pickUp()
	case "<", ",":
		m.shiftTask(-1)
	case ">", ".":
		m.shiftTask(1)
	case "K":
		m.reorderTask(-1)
	case "J":
		m.reorderTask(1)
	case "n":
		if col, ok := m.currentColumn(); ok {
			return m, m.openForm(newTaskForm(col.ID))
		}
		m.message = "Add a column first (N)"
	case "N":
		return m, m.openForm(newColumnForm())
	case "e":
		if t, ok := m.selectedTask(); ok {
			col, _ := m.currentColumn()
			return m, m.openForm(editTaskForm(col.ID, t))
		}
	case "E":
		if col, ok := m.currentColumn(); ok {
			return m, m.openForm(editColumnForm(col))
		}
	case "d", "x":
		if t, ok := m.selectedTask(); ok {
			col, _ := m.currentColumn()
			m.askConfirm(fmt.Sprintf("Delete task %q?", t.Content), session.DeleteTask(col.ID, t.ID), "Task deleted")
		}
	case "D", "X":
		if col, ok := m.currentColumn(); ok {
			prompt := fmt.Sprintf("Delete column %q?", col.Title)
			if n := len(col.Items); n > 0 {
				prompt = fmt.Sprintf("Delete column %q and its %d task(s)?", col.Title, n)
			}
			m.askConfirm(prompt, session.DeleteColumn(col.ID), "Column deleted")
		}
	case "p":
		if t, ok := m.selectedTask(); ok {
			col, _ := m.currentColumn()
			next := t.Priority.Next()
			m.dispatch(session.EditTask(col.ID, t.ID, t.Content, next), "Priority "+string(next))
		}
	case "c":
		if col, ok := m.currentColumn(); ok {
			next := col.Color.Next()
			m.dispatch(session.EditColumn(col.ID, col.Title, next), "Color "+next.Swatch().Name)
		}
	}
	return m, nil
}

func (m *model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.cancelDrag()
		m.message = "Move cancelled"
	case "left", "h":
		if m.col > 0 {
			m.col--
			m.row = min(m.row, m.dropLimit(m.col))
		}
	case "right", "l":
		if m.col < len(m.board.Columns)-1 {
			m.col++
			m.row = min(m.row, m.dropLimit(m.col))
		}
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < m.dropLimit(m.col) {
			m.row++
		}
	case " ", "space", "enter":
		m.drop()
	}
	return m, nil
}

func (m *model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
	case tea.KeyEnter:
		target := f.kind
		if err := m.sess.Dispatch(m.ctx, f.command()); err != nil {
			f.err = err
			return m, nil
		}
		m.message = f.done()
		m.closeForm()
		m.reload()
		switch target {
		case formAddTask:
			if col, ok := m.currentColumn(); ok {
				m.row = len(col.Items) - 1
			}
		case formAddColumn:
			m.col = len(m.board.Columns) - 1
			m.row = 0
		}
	case tea.KeyTab, tea.KeyShiftTab:
		f.cycle()
	default:
		return m, f.edit(msg)
	}
	return m, nil
}

func (m *model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		c := m.confirm
		m.confirm = nil
		m.mode = modeBoard
		m.dispatch(c.cmd, c.done)
	case "n", "N", "esc":
		m.confirm = nil
		m.mode = modeBoard
	}
	return m, nil
}

// dispatch sends cmd to the session and refreshes the view on success.
func (m *model) dispatch(cmd session.Command, done string) bool {
	if err := m.sess.Dispatch(m.ctx, cmd); err != nil {
		m.err = err
		return false
	}
	m.message = done
	m.reload()
	return true
}

func (m *model) reload() {
	m.board = m.sess.Board()
	m.clampCursor()
}

func (m *model) clampCursor() {
	m.col = max(0, min(m.col, len(m.board.Columns)-1))
	limit := -1
	if col, ok := m.currentColumn(); ok {
		limit = len(col.Items) - 1
	}
	m.row = max(0, min(m.row, limit))
}

func (m *model) currentColumn() (board.Column, bool) {
	if m.col < 0 || m.col >= len(m.board.Columns) {
		return board.Column{}, false
	}
	return m.board.Columns[m.col], true
}

func (m *model) selectedTask() (board.Task, bool) {
	col, ok := m.currentColumn()
	if !ok || m.row < 0 || m.row >= len(col.Items) {
		return board.Task{}, false
	}
	return col.Items[m.row], true
}

func (m *model) moveColumn(delta int) {
	m.col += delta
	m.clampCursor()
}

func (m *model) moveRow(delta int) {
	m.row += delta
	m.clampCursor()
}

func (m *model) openForm(f *form) tea.Cmd {
	m.form = f
	m.mode = modeForm
	return f.focus()
}

func (m *model) closeForm() {
	m.form = nil
	m.mode = modeBoard
}

func (m *model) askConfirm(prompt string, cmd session.Command, done string) {
	m.confirm = &confirmation{prompt: prompt, cmd: cmd, done: done}
	m.mode = modeConfirm
}

func (m *model) pickUp() {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	col, _ := m.currentColumn()
	m.drag = &drag{column: col.ID, index: m.row, task: t}
	m.mode = modeDrag
}

// dropLimit is the last valid drop index in column ci. The carried card is
// not counted in its own column.
func (m *model) dropLimit(ci int) int {
	n := len(m.board.Columns[ci].Items)
	if m.drag != nil && m.board.Columns[ci].ID == m.drag.column {
		return n - 1
	}
	return n
}

func (m *model) drop() {
	d := m.drag
	dst, _ := m.currentColumn()
	m.drag = nil
	m.mode = modeBoard
	if m.dispatch(session.MoveTask(d.column, d.index, dst.ID, m.row), "Task moved") {
		return
	}
	m.restoreCursor(d)
}

func (m *model) cancelDrag() {
	d := m.drag
	m.drag = nil
	m.mode = modeBoard
	m.restoreCursor(d)
}

func (m *model) restoreCursor(d *drag) {
	if d == nil {
		return
	}
	if ci := m.board.ColumnIndex(d.column); ci >= 0 {
		m.col = ci
		m.row = d.index
	}
	m.clampCursor()
}

// shiftTask moves the selected card to the end of the neighbouring column.
func (m *model) shiftTask(delta int) {
	if _, ok := m.selectedTask(); !ok {
		return
	}
	target := m.col + delta
	if target < 0 {
		m.message = "Already in the first column"
		return
	}
	if target >= len(m.board.Columns) {
		m.message = "Already in the last column"
		return
	}
	src := m.board.Columns[m.col]
	dst := m.board.Columns[target]
	if m.dispatch(session.MoveTask(src.ID, m.row, dst.ID, len(dst.Items)), "Task moved") {
		m.col = target
		m.row = len(dst.Items)
		m.clampCursor()
	}
}

// reorderTask swaps the selected card with its neighbour in the same column.
func (m *model) reorderTask(delta int) {
	col, ok := m.currentColumn()
	if !ok || m.row >= len(col.Items) {
		return
	}
	target := m.row + delta
	if target < 0 || target >= len(col.Items) {
		return
	}
	if m.dispatch(session.MoveTask(col.ID, m.row, col.ID, target), "Task moved") {
		m.row = target
	}
}
