package board

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func sequenceIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func fixedClock() time.Time {
	return time.Date(2024, time.December, 14, 9, 30, 0, 0, time.UTC)
}

func newTestStore() *Store {
	return NewStore(WithIDGenerator(sequenceIDs("id-")), WithClock(fixedClock))
}

func task(id string) Task {
	return Task{ID: id, Content: "task " + id, Priority: PriorityLow, Date: "1 Jan"}
}

func column(id string, taskIDs ...string) Column {
	items := make([]Task, 0, len(taskIDs))
	for _, tid := range taskIDs {
		items = append(items, task(tid))
	}
	return Column{ID: id, Title: "Column " + id, Color: ColorBlue, Items: items}
}

func itemIDs(c Column) []string {
	ids := make([]string, len(c.Items))
	for i, t := range c.Items {
		ids[i] = t.ID
	}
	return ids
}

func assertIDs(t *testing.T, c Column, want ...string) {
	t.Helper()
	got := itemIDs(c)
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("column %s items: got %v, want %v", c.ID, got, want)
	}
}

func assertUnique(t *testing.T, b Board) {
	t.Helper()
	seen := make(map[string]bool)
	for _, col := range b.Columns {
		if seen[col.ID] {
			t.Errorf("duplicate id %q", col.ID)
		}
		seen[col.ID] = true
		for _, tk := range col.Items {
			if seen[tk.ID] {
				t.Errorf("duplicate id %q", tk.ID)
			}
			seen[tk.ID] = true
		}
	}
}

func TestAddColumn(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "t1")}}

	next, err := s.AddColumn(b, "Review", ColorPurple)
	if err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}
	if len(next.Columns) != 2 {
		t.Fatalf("columns: got %d, want 2", len(next.Columns))
	}
	added := next.Columns[1]
	if added.ID != "id-1" || added.Title != "Review" || added.Color != ColorPurple {
		t.Errorf("added column: got %+v", added)
	}
	if added.Items == nil || len(added.Items) != 0 {
		t.Errorf("added column items: got %#v, want empty", added.Items)
	}
	if len(b.Columns) != 1 {
		t.Errorf("input board was modified: %d columns", len(b.Columns))
	}

	// Duplicate titles are allowed.
	next, err = s.AddColumn(next, "Review", "")
	if err != nil {
		t.Fatalf("AddColumn() duplicate title error = %v", err)
	}
	if next.Columns[2].Color != DefaultColor {
		t.Errorf("empty color: got %q, want %q", next.Columns[2].Color, DefaultColor)
	}
	assertUnique(t, next)
}

func TestAddColumnRejectsBlankTitle(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a")}}

	for _, title := range []string{"", "   ", "\t\n"} {
		next, err := s.AddColumn(b, title, ColorBlue)
		if !IsValidation(err) {
			t.Errorf("AddColumn(%q) error = %v, want validation error", title, err)
		}
		if !errors.Is(err, ErrBlank) {
			t.Errorf("AddColumn(%q) error should wrap ErrBlank", title)
		}
		if !next.Equal(b) {
			t.Errorf("AddColumn(%q) changed the board", title)
		}
	}
}

func TestEditColumn(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "t1", "t2"), column("b")}}

	next, err := s.EditColumn(b, "a", "Renamed", ColorCyan)
	if err != nil {
		t.Fatalf("EditColumn() error = %v", err)
	}
	if next.Columns[0].Title != "Renamed" || next.Columns[0].Color != ColorCyan {
		t.Errorf("edited column: got %+v", next.Columns[0])
	}
	assertIDs(t, next.Columns[0], "t1", "t2")
	if b.Columns[0].Title != "Column a" {
		t.Error("input board was modified")
	}

	if _, err := s.EditColumn(b, "missing", "X", ColorCyan); !errors.Is(err, ErrNotFound) {
		t.Errorf("EditColumn(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := s.EditColumn(b, "a", " ", ColorCyan); !IsValidation(err) {
		t.Errorf("EditColumn(blank) error = %v, want validation error", err)
	}
}

func TestDeleteColumnCascades(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "t1"), column("b", "t2", "t3"), column("c", "t4")}}

	next, err := s.DeleteColumn(b, "b")
	if err != nil {
		t.Fatalf("DeleteColumn() error = %v", err)
	}
	if len(next.Columns) != 2 || next.Columns[0].ID != "a" || next.Columns[1].ID != "c" {
		t.Fatalf("columns after delete: got %+v", next.Columns)
	}
	for _, id := range []string{"t2", "t3"} {
		if _, _, err := next.FindTask(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("FindTask(%s) error = %v, want ErrNotFound", id, err)
		}
	}
	if next.TaskCount() != 2 {
		t.Errorf("TaskCount: got %d, want 2", next.TaskCount())
	}
	if len(b.Columns) != 3 {
		t.Error("input board was modified")
	}

	if _, err := s.DeleteColumn(next, "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteColumn() error = %v, want ErrNotFound", err)
	}
}

func TestAddTask(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "t1")}}

	next, err := s.AddTask(b, "a", "Write docs", PriorityHigh)
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	assertIDs(t, next.Columns[0], "t1", "id-1")
	added := next.Columns[0].Items[1]
	if added.Content != "Write docs" || added.Priority != PriorityHigh {
		t.Errorf("added task: got %+v", added)
	}
	if added.Date != "14 Dec" {
		t.Errorf("Date: got %q, want %q", added.Date, "14 Dec")
	}

	next, err = s.AddTask(next, "a", "Unknown priority", Priority("Urgent"))
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if got := next.Columns[0].Items[2].Priority; got != PriorityLow {
		t.Errorf("unrecognized priority: got %q, want Low", got)
	}
	assertUnique(t, next)
}

func TestAddTaskRejections(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "t1")}}

	next, err := s.AddTask(b, "a", "   ", PriorityLow)
	if !IsValidation(err) {
		t.Errorf("AddTask(blank) error = %v, want validation error", err)
	}
	if !next.Equal(b) {
		t.Error("AddTask(blank) changed the board")
	}

	next, err = s.AddTask(b, "missing", "Real content", PriorityLow)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Kind != KindColumn {
		t.Errorf("AddTask(missing column) error = %v, want column not found", err)
	}
	if !next.Equal(b) {
		t.Error("AddTask(missing column) changed the board")
	}
}

func TestAddTaskRetriesCollidingIDs(t *testing.T) {
	ids := []string{"t1", "t1", "fresh"}
	gen := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	s := NewStore(WithIDGenerator(gen), WithClock(fixedClock))
	b := Board{Columns: []Column{column("a", "t1")}}

	next, err := s.AddTask(b, "a", "New", PriorityLow)
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	assertIDs(t, next.Columns[0], "t1", "fresh")
}

func TestAddTaskIDCollision(t *testing.T) {
	s := NewStore(WithIDGenerator(func() string { return "a" }))
	b := Board{Columns: []Column{column("a")}}

	if _, err := s.AddTask(b, "a", "New", PriorityLow); !errors.Is(err, ErrIDCollision) {
		t.Errorf("AddTask() error = %v, want ErrIDCollision", err)
	}
}

func TestEditTask(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "t1", "t2", "t3")}}

	next, err := s.EditTask(b, "a", "t2", "Updated", PriorityMedium)
	if err != nil {
		t.Fatalf("EditTask() error = %v", err)
	}
	assertIDs(t, next.Columns[0], "t1", "t2", "t3")
	edited := next.Columns[0].Items[1]
	if edited.Content != "Updated" || edited.Priority != PriorityMedium {
		t.Errorf("edited task: got %+v", edited)
	}
	if edited.Date != b.Columns[0].Items[1].Date {
		t.Errorf("Date changed: got %q", edited.Date)
	}
	if b.Columns[0].Items[1].Content != "task t2" {
		t.Error("input board was modified")
	}

	tests := []struct {
		name    string
		col     string
		task    string
		content string
		check   func(error) bool
	}{
		{"blank content", "a", "t1", "  ", IsValidation},
		{"missing column", "x", "t1", "ok", func(err error) bool { return errors.Is(err, ErrNotFound) }},
		{"missing task", "a", "t9", "ok", func(err error) bool { return errors.Is(err, ErrNotFound) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.EditTask(b, tt.col, tt.task, tt.content, PriorityHigh)
			if !tt.check(err) {
				t.Errorf("EditTask() error = %v", err)
			}
			if !got.Equal(b) {
				t.Error("rejected EditTask changed the board")
			}
		})
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "t1", "t2", "t3"), column("b", "t4")}}

	next, err := s.DeleteTask(b, "a", "t2")
	if err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	assertIDs(t, next.Columns[0], "t1", "t3")
	assertIDs(t, b.Columns[0], "t1", "t2", "t3")

	if _, err := s.DeleteTask(next, "a", "t2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteTask() error = %v, want ErrNotFound", err)
	}
	// The task exists, but not in the named column.
	if _, err := s.DeleteTask(b, "a", "t4"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteTask(wrong column) error = %v, want ErrNotFound", err)
	}
}
