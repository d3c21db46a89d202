package cmd

import (
	"fmt"
	"strings"

	"github.com/nibzard/kanban-go/internal/board"
)

// resolveColumn finds a column by id, then unique title (case-insensitive),
// then unique id prefix.
func resolveColumn(b board.Board, ref string) (board.Column, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return board.Column{}, fmt.Errorf("column reference is empty")
	}
	if c, err := b.Column(ref); err == nil {
		return c, nil
	}

	var byTitle []board.Column
	for _, c := range b.Columns {
		if strings.EqualFold(c.Title, ref) {
			byTitle = append(byTitle, c)
		}
	}
	switch len(byTitle) {
	case 1:
		return byTitle[0], nil
	case 0:
	default:
		return board.Column{}, fmt.Errorf("column %q is ambiguous: %d columns share that title", ref, len(byTitle))
	}

	var byPrefix []board.Column
	for _, c := range b.Columns {
		if strings.HasPrefix(c.ID, ref) {
			byPrefix = append(byPrefix, c)
		}
	}
	switch len(byPrefix) {
	case 1:
		return byPrefix[0], nil
	case 0:
		return board.Column{}, &board.NotFoundError{Kind: board.KindColumn, ID: ref}
	default:
		return board.Column{}, fmt.Errorf("column %q is ambiguous: matches %d ids", ref, len(byPrefix))
	}
}

// resolveTask finds a task by id or unique id prefix and returns it with the
// id of its column.
func resolveTask(b board.Board, ref string) (board.Task, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return board.Task{}, "", fmt.Errorf("task reference is empty")
	}
	if t, col, err := b.FindTask(ref); err == nil {
		return t, col, nil
	}

	var (
		found  board.Task
		column string
		n      int
	)
	for _, c := range b.Columns {
		for _, t := range c.Items {
			if strings.HasPrefix(t.ID, ref) {
				found, column = t, c.ID
				n++
			}
		}
	}
	switch n {
	case 0:
		return board.Task{}, "", &board.NotFoundError{Kind: board.KindTask, ID: ref}
	case 1:
		return found, column, nil
	default:
		return board.Task{}, "", fmt.Errorf("task %q is ambiguous: matches %d ids", ref, n)
	}
}

// shortID abbreviates generated ids for display. Short ids such as the
// default column ids are kept whole.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:8]
	}
	return id
}
