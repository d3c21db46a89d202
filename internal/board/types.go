package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the priority levels in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority returns the priority named by s (case-insensitive).
// Empty or unrecognized values map to PriorityLow.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// Next returns the following priority level, wrapping from High to Low.
func (p Priority) Next() Priority {
	switch ParsePriority(string(p)) {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// Task is a single card on the board.
type Task struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	Priority Priority `json:"priority"`
	Date     string   `json:"date"`
}

// UnmarshalJSON decodes a task and normalizes its priority.
func (t *Task) UnmarshalJSON(data []byte) error {
	type rawTask Task
	var raw rawTask
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Task(raw)
	t.Priority = ParsePriority(string(t.Priority))
	return nil
}

// Column is a named, colored lane of tasks.
type Column struct {
	ID    string
	Title string
	Color Color
	Items []Task
}

// IndexOf returns the position of the task with the given id, or -1.
func (c Column) IndexOf(taskID string) int {
	for i := range c.Items {
		if c.Items[i].ID == taskID {
			return i
		}
	}
	return -1
}

func (c Column) clone() Column {
	c.Items = slices.Clone(c.Items)
	return c
}

// columnBody is the persisted shape of a column; the id is the object key.
type columnBody struct {
	Title string `json:"title"`
	Color Color  `json:"color"`
	Items []Task `json:"items"`
}

// Board is the ordered set of columns.
type Board struct {
	Columns []Column
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	if b.Columns == nil {
		return Board{}
	}
	cols := make([]Column, len(b.Columns))
	for i := range b.Columns {
		cols[i] = b.Columns[i].clone()
	}
	return Board{Columns: cols}
}

// ColumnIndex returns the position of the column with the given id, or -1.
func (b Board) ColumnIndex(id string) int {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return i
		}
	}
	return -1
}

// Column returns the column with the given id.
func (b Board) Column(id string) (Column, error) {
	i := b.ColumnIndex(id)
	if i < 0 {
		return Column{}, &NotFoundError{Kind: KindColumn, ID: id}
	}
	return b.Columns[i], nil
}

// FindTask locates a task anywhere on the board and returns it with the id
// of the column holding it.
func (b Board) FindTask(taskID string) (Task, string, error) {
	for _, col := range b.Columns {
		if i := col.IndexOf(taskID); i >= 0 {
			return col.Items[i], col.ID, nil
		}
	}
	return Task{}, "", &NotFoundError{Kind: KindTask, ID: taskID}
}

// TaskCount returns the number of tasks across all columns.
func (b Board) TaskCount() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Items)
	}
	return n
}

// hasID reports whether id is already used by a column or a task.
func (b Board) hasID(id string) bool {
	for _, col := range b.Columns {
		if col.ID == id || col.IndexOf(id) >= 0 {
			return true
		}
	}
	return false
}

// Equal reports whether two boards hold the same columns and tasks in the
// same order. Nil and empty item lists compare equal.
func (b Board) Equal(other Board) bool {
	if len(b.Columns) != len(other.Columns) {
		return false
	}
	for i := range b.Columns {
		left, right := b.Columns[i], other.Columns[i]
		if left.ID != right.ID || left.Title != right.Title || left.Color != right.Color {
			return false
		}
		if !slices.Equal(left.Items, right.Items) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the board as a JSON object keyed by column id, with
// keys in column order.
func (b Board) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range b.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col.ID)
		if err != nil {
			return nil, err
		}
		items := col.Items
		if items == nil {
			items = []Task{}
		}
		body, err := json.Marshal(columnBody{Title: col.Title, Color: col.Color, Items: items})
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.ID, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keyed by column id, keeping the key
// order as the column order.
func (b *Board) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("board: expected object, got %v", tok)
	}

	cols := make([]Column, 0)
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return fmt.Errorf("board: expected column id, got %v", tok)
		}
		if seen[id] {
			return fmt.Errorf("board: duplicate column id %q", id)
		}
		seen[id] = true

		var body columnBody
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("column %q: %w", id, err)
		}
		items := body.Items
		if items == nil {
			items = []Task{}
		}
		cols = append(cols, Column{
			ID:    id,
			Title: body.Title,
			Color: ParseColor(string(body.Color)),
			Items: items,
		})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	b.Columns = cols
	return nil
}
