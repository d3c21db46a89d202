package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/session"
)

type formKind int

const (
	formAddTask formKind = iota
	formEditTask
	formAddColumn
	formEditColumn
)

// form is the dialog used to add or edit a task or column.
type form struct {
	kind     formKind
	columnID string
	taskID   string
	input    textinput.Model
	priority board.Priority
	color    board.Color
	err      error
}

func newInput(value, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CursorEnd()
	return ti
}

func newTaskForm(columnID string) *form {
	return &form{
		kind:     formAddTask,
		columnID: columnID,
		input:    newInput("", "What needs doing?"),
		priority: board.PriorityLow,
	}
}

func editTaskForm(columnID string, t board.Task) *form {
	return &form{
		kind:     formEditTask,
		columnID: columnID,
		taskID:   t.ID,
		input:    newInput(t.Content, ""),
		priority: board.ParsePriority(string(t.Priority)),
	}
}

func newColumnForm() *form {
	return &form{kind: formAddColumn, input: newInput("", "Column title"), color: board.DefaultColor}
}

func editColumnForm(c board.Column) *form {
	return &form{
		kind:     formEditColumn,
		columnID: c.ID,
		input:    newInput(c.Title, ""),
		color:    board.ParseColor(string(c.Color)),
	}
}

func (f *form) isTask() bool {
	return f.kind == formAddTask || f.kind == formEditTask
}

func (f *form) title() string {
	switch f.kind {
	case formAddTask:
		return "New task"
	case formEditTask:
		return "Edit task"
	case formAddColumn:
		return "New column"
	default:
		return "Edit column"
	}
}

func (f *form) label() string {
	if f.isTask() {
		return "Content"
	}
	return "Title"
}

// cycle advances the priority or color selector.
func (f *form) cycle() {
	if f.isTask() {
		f.priority = f.priority.Next()
		return
	}
	f.color = f.color.Next()
}

func (f *form) focus() tea.Cmd {
	return f.input.Focus()
}

// edit forwards editing keys and cursor ticks to the text input.
func (f *form) edit(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		f.err = nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *form) value() string {
	return strings.TrimSpace(f.input.Value())
}

func (f *form) command() session.Command {
	switch f.kind {
	case formAddTask:
		return session.AddTask(f.columnID, f.value(), f.priority)
	case formEditTask:
		return session.EditTask(f.columnID, f.taskID, f.value(), f.priority)
	case formAddColumn:
		return session.AddColumn(f.value(), f.color)
	default:
		return session.EditColumn(f.columnID, f.value(), f.color)
	}
}

func (f *form) done() string {
	switch f.kind {
	case formAddTask:
		return "Task added"
	case formEditTask:
		return "Task updated"
	case formAddColumn:
		return "Column added"
	default:
		return "Column updated"
	}
}
