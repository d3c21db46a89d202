package board

import (
	"errors"
	"testing"
)

func TestMoveTaskWithinColumn(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "A", "B", "C", "D"), column("b", "X")}}

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"first to third", 0, 2, []string{"B", "C", "A", "D"}},
		{"last to first", 3, 0, []string{"D", "A", "B", "C"}},
		{"adjacent down", 1, 2, []string{"A", "C", "B", "D"}},
		{"adjacent up", 2, 1, []string{"A", "C", "B", "D"}},
		{"to end", 0, 3, []string{"B", "C", "D", "A"}},
		{"past end clamps", 0, 10, []string{"B", "C", "D", "A"}},
		{"negative clamps", 2, -5, []string{"C", "A", "B", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := s.MoveTask(b, "a", tt.from, "a", tt.to)
			if err != nil {
				t.Fatalf("MoveTask() error = %v", err)
			}
			assertIDs(t, next.Columns[0], tt.want...)
			assertIDs(t, next.Columns[1], "X")
			assertIDs(t, b.Columns[0], "A", "B", "C", "D")
		})
	}
}

func TestMoveTaskAcrossColumns(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("src", "A", "B"), column("dst", "X", "Y")}}

	next, err := s.MoveTask(b, "src", 0, "dst", 1)
	if err != nil {
		t.Fatalf("MoveTask() error = %v", err)
	}
	assertIDs(t, next.Columns[0], "B")
	assertIDs(t, next.Columns[1], "X", "A", "Y")
	assertIDs(t, b.Columns[0], "A", "B")
	assertIDs(t, b.Columns[1], "X", "Y")

	tests := []struct {
		name    string
		to      int
		wantDst []string
	}{
		{"to front", 0, []string{"A", "X", "Y"}},
		{"to end", 2, []string{"X", "Y", "A"}},
		{"past end clamps", 7, []string{"X", "Y", "A"}},
		{"negative clamps", -1, []string{"A", "X", "Y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := s.MoveTask(b, "src", 0, "dst", tt.to)
			if err != nil {
				t.Fatalf("MoveTask() error = %v", err)
			}
			assertIDs(t, next.Columns[1], tt.wantDst...)
		})
	}
}

func TestMoveTaskIntoEmptyColumn(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("src", "A"), column("empty")}}

	next, err := s.MoveTask(b, "src", 0, "empty", 3)
	if err != nil {
		t.Fatalf("MoveTask() error = %v", err)
	}
	assertIDs(t, next.Columns[0])
	assertIDs(t, next.Columns[1], "A")
}

func TestMoveTaskNoOps(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "A", "B", "C"), column("b", "X")}}

	for _, col := range b.Columns {
		for i := range col.Items {
			next, err := s.MoveTask(b, col.ID, i, col.ID, i)
			if err != nil {
				t.Fatalf("MoveTask(%s,%d) error = %v", col.ID, i, err)
			}
			if !next.Equal(b) {
				t.Errorf("MoveTask(%s,%d,%s,%d) changed the board", col.ID, i, col.ID, i)
			}
		}
	}

	next, err := s.MoveTask(b, "a", 1, "deleted-mid-drag", 0)
	if err != nil {
		t.Fatalf("MoveTask(dangling destination) error = %v", err)
	}
	if !next.Equal(b) {
		t.Error("MoveTask(dangling destination) changed the board")
	}
}

func TestMoveTaskRejections(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "A"), column("b")}}

	if _, err := s.MoveTask(b, "missing", 0, "b", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing source column: error = %v, want ErrNotFound", err)
	}
	for _, idx := range []int{-1, 1, 5} {
		next, err := s.MoveTask(b, "a", idx, "b", 0)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("source index %d: error = %v, want ErrIndexOutOfRange", idx, err)
		}
		if !next.Equal(b) {
			t.Errorf("source index %d changed the board", idx)
		}
	}
	if _, err := s.MoveTask(b, "b", 0, "a", 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("move from empty column: error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestMoveTaskConservation(t *testing.T) {
	s := newTestStore()
	b := Board{Columns: []Column{column("a", "A", "B", "C"), column("b", "X", "Y"), column("c")}}
	b.Columns[0].Items[1].Priority = PriorityHigh
	original := make(map[string]Task)
	for _, col := range b.Columns {
		for _, tk := range col.Items {
			original[tk.ID] = tk
		}
	}

	moves := []struct {
		src string
		si  int
		dst string
		di  int
	}{
		{"a", 1, "c", 0},
		{"b", 0, "a", 2},
		{"c", 0, "b", 1},
		{"a", 0, "a", 2},
		{"b", 1, "c", 9},
	}

	cur := b
	for _, m := range moves {
		next, err := s.MoveTask(cur, m.src, m.si, m.dst, m.di)
		if err != nil {
			t.Fatalf("MoveTask(%+v) error = %v", m, err)
		}
		if next.TaskCount() != b.TaskCount() {
			t.Fatalf("task count: got %d, want %d", next.TaskCount(), b.TaskCount())
		}
		assertUnique(t, next)
		for id, want := range original {
			got, _, err := next.FindTask(id)
			if err != nil {
				t.Fatalf("FindTask(%s) error = %v", id, err)
			}
			if got != want {
				t.Errorf("task %s changed: got %+v, want %+v", id, got, want)
			}
		}
		cur = next
	}
}

func TestReorderDoesNotAliasInput(t *testing.T) {
	items := []Task{task("A"), task("B"), task("C")}
	out := Reorder(items, 0, 2)
	out[0].Content = "changed"
	if items[0].ID != "A" || items[1].Content != "task B" {
		t.Errorf("input modified: %+v", items)
	}

	src, dst := Transfer(items, 2, nil, 0)
	if len(src) != 2 || len(dst) != 1 || dst[0].ID != "C" {
		t.Errorf("Transfer: src=%v dst=%v", src, dst)
	}
	if len(items) != 3 || items[2].ID != "C" {
		t.Errorf("input modified: %+v", items)
	}
}
