package session

import "github.com/nibzard/kanban-go/internal/board"

// Command is one board operation to dispatch through a Session.
type Command struct {
	name  string
	attrs []any
	apply func(s *board.Store, b board.Board) (board.Board, error)
}

// Name returns the operation name used in logs.
func (c Command) Name() string { return c.name }

// AddColumn appends a new empty column.
func AddColumn(title string, color board.Color) Command {
	return Command{
		name:  "add_column",
		attrs: []any{"title", title, "color", string(color)},
		apply: func(s *board.Store, b board.Board) (board.Board, error) {
			return s.AddColumn(b, title, color)
		},
	}
}

// EditColumn replaces a column's title and color.
func EditColumn(columnID, title string, color board.Color) Command {
	return Command{
		name:  "edit_column",
		attrs: []any{"column", columnID, "title", title, "color", string(color)},
		apply: func(s *board.Store, b board.Board) (board.Board, error) {
			return s.EditColumn(b, columnID, title, color)
		},
	}
}

// DeleteColumn removes a column and every task in it.
func DeleteColumn(columnID string) Command {
	return Command{
		name:  "delete_column",
		attrs: []any{"column", columnID},
		apply: func(s *board.Store, b board.Board) (board.Board, error) {
			return s.DeleteColumn(b, columnID)
		},
	}
}

// AddTask appends a new task to a column.
func AddTask(columnID, content string, priority board.Priority) Command {
	return Command{
		name:  "add_task",
		attrs: []any{"column", columnID, "priority", string(priority)},
		apply: func(s *board.Store, b board.Board) (board.Board, error) {
			return s.AddTask(b, columnID, content, priority)
		},
	}
}

// EditTask replaces a task's content and priority.
func EditTask(columnID, taskID, content string, priority board.Priority) Command {
	return Command{
		name:  "edit_task",
		attrs: []any{"column", columnID, "task", taskID, "priority", string(priority)},
		apply: func(s *board.Store, b board.Board) (board.Board, error) {
			return s.EditTask(b, columnID, taskID, content, priority)
		},
	}
}

// DeleteTask removes a task from a column.
func DeleteTask(columnID, taskID string) Command {
	return Command{
		name:  "delete_task",
		attrs: []any{"column", columnID, "task", taskID},
		apply: func(s *board.Store, b board.Board) (board.Board, error) {
			return s.DeleteTask(b, columnID, taskID)
		},
	}
}

// MoveTask relocates a task given a resolved drop: source column and index,
// destination column and index.
func MoveTask(srcCol string, srcIdx int, dstCol string, dstIdx int) Command {
	return Command{
		name:  "move_task",
		attrs: []any{"from", srcCol, "from_index", srcIdx, "to", dstCol, "to_index", dstIdx},
		apply: func(s *board.Store, b board.Board) (board.Board, error) {
			return s.MoveTask(b, srcCol, srcIdx, dstCol, dstIdx)
		},
	}
}
