// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/kv"
	"github.com/nibzard/kanban-go/internal/snapshot"
	"github.com/nibzard/kanban-go/internal/ui"
)

// isolate keeps user and project config files and KANBAN_* variables out of
// the test and returns an empty data directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("APPDATA", home)
	for _, key := range []string{
		"KANBAN_CONFIG", "KANBAN_BACKEND", "KANBAN_DATA_DIR", "KANBAN_KEY", "KANBAN_DATE_LOCALE",
		"KANBAN_REDIS_ADDR", "KANBAN_LOG_LEVEL", "KANBAN_LOG_FORMAT", "KANBAN_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
	chdir(t, t.TempDir())
	return t.TempDir()
}

// runCLI runs the CLI against dataDir and returns what it printed.
func runCLI(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &out, &errOut
	defer func() { stdout, stderr = oldOut, oldErr }()

	full := append([]string{"-data-dir", dataDir, "-log-level", "error"}, args...)
	err := Run(context.Background(), full)
	return out.String(), err
}

func mustRun(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, dataDir, args...)
	if err != nil {
		t.Fatalf("kanban %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func loadBoard(t *testing.T, dataDir string) board.Board {
	t.Helper()
	out := mustRun(t, dataDir, "show", "-json")
	b, err := snapshot.Decode([]byte(out))
	if err != nil {
		t.Fatalf("decode show -json output: %v\n%s", err, out)
	}
	return b
}

// TestRun tests the main Run function.
func TestRun(t *testing.T) {
	dir := isolate(t)

	t.Run("shows help with -help flag", func(t *testing.T) {
		out, err := runCLI(t, dir, "-help")
		if err != nil {
			t.Fatalf("expected no error with -help, got %v", err)
		}
		if !strings.Contains(out, "Commands:") {
			t.Errorf("help output missing commands:\n%s", out)
		}
	})

	t.Run("shows help with help command", func(t *testing.T) {
		if _, err := runCLI(t, dir, "help"); err != nil {
			t.Errorf("expected no error with help command, got %v", err)
		}
	})

	t.Run("shows version", func(t *testing.T) {
		for _, args := range [][]string{{"-v"}, {"-version"}, {"version"}} {
			out, err := runCLI(t, dir, args...)
			if err != nil {
				t.Fatalf("%v: %v", args, err)
			}
			if !strings.Contains(out, "kanban version "+Version) {
				t.Errorf("%v: got %q", args, out)
			}
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		_, err := runCLI(t, dir, "unknown-command")
		if err == nil || !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected 'unknown command' error, got %v", err)
		}
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		_, err := runCLI(t, dir, "-backend", "sqlite", "show")
		if err == nil || !strings.Contains(err.Error(), "invalid config") {
			t.Errorf("expected invalid config error, got %v", err)
		}
	})

	t.Run("colors lists the palette", func(t *testing.T) {
		out := mustRun(t, dir, "colors")
		for _, sw := range board.Palette {
			if !strings.Contains(out, string(sw.Color)) {
				t.Errorf("colors output missing %s", sw.Color)
			}
		}
	})
}

func TestShowDefaultBoard(t *testing.T) {
	dir := isolate(t)

	out := mustRun(t, dir, "show")
	for _, want := range []string{"To Do [todo] (Pink, 1)", "In Progress [inProgress] (Blue, 1)", "Done [done] (Emerald, 0)", "Setup Project React", "(empty)"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestColumnCommands(t *testing.T) {
	dir := isolate(t)

	mustRun(t, dir, "column", "add", "-color", "purple", "Code", "Review")
	b := loadBoard(t, dir)
	if len(b.Columns) != 4 {
		t.Fatalf("columns: got %d, want 4", len(b.Columns))
	}
	added := b.Columns[3]
	if added.Title != "Code Review" || added.Color != board.ColorPurple {
		t.Errorf("added column: %+v", added)
	}

	mustRun(t, dir, "column", "edit", "-title", "Review", "code review")
	mustRun(t, dir, "column", "edit", "-color", "bg-cyan-500", added.ID)
	b = loadBoard(t, dir)
	if got := b.Columns[3]; got.Title != "Review" || got.Color != board.ColorCyan {
		t.Errorf("edited column: %+v", got)
	}

	out := mustRun(t, dir, "column", "rm", "to do")
	if !strings.Contains(out, "1 task(s)") {
		t.Errorf("rm output: %q", out)
	}
	b = loadBoard(t, dir)
	if len(b.Columns) != 3 || b.ColumnIndex(board.DefaultTodoID) >= 0 {
		t.Errorf("todo column should be gone: %+v", b.Columns)
	}

	if _, err := runCLI(t, dir, "column", "add", "   "); !errors.Is(err, board.ErrBlank) {
		t.Errorf("blank title: got %v, want ErrBlank", err)
	}
	if _, err := runCLI(t, dir, "column", "rm", "nope"); !errors.Is(err, board.ErrNotFound) {
		t.Errorf("missing column: got %v, want ErrNotFound", err)
	}
}

func TestTaskCommands(t *testing.T) {
	dir := isolate(t)

	mustRun(t, dir, "task", "add", "-priority", "medium", "todo", "Write", "docs")
	b := loadBoard(t, dir)
	todo := b.Columns[0]
	if len(todo.Items) != 2 {
		t.Fatalf("todo items: got %d, want 2", len(todo.Items))
	}
	added := todo.Items[1]
	if added.Content != "Write docs" || added.Priority != board.PriorityMedium || added.Date == "" {
		t.Errorf("added task: %+v", added)
	}

	mustRun(t, dir, "task", "edit", "-priority", "high", "-content", "Write more docs", added.ID[:8])
	mustRun(t, dir, "task", "mv", "-index", "0", added.ID, "In Progress")

	b = loadBoard(t, dir)
	inProgress := b.Columns[1]
	if len(inProgress.Items) != 2 || inProgress.Items[0].ID != added.ID {
		t.Fatalf("in progress after move: %+v", inProgress.Items)
	}
	if got := inProgress.Items[0]; got.Content != "Write more docs" || got.Priority != board.PriorityHigh {
		t.Errorf("edited task: %+v", got)
	}

	mustRun(t, dir, "task", "mv", added.ID, "done")
	b = loadBoard(t, dir)
	if done := b.Columns[2]; len(done.Items) != 1 || done.Items[0].ID != added.ID {
		t.Errorf("done after move: %+v", done.Items)
	}

	mustRun(t, dir, "task", "rm", added.ID)
	b = loadBoard(t, dir)
	if _, _, err := b.FindTask(added.ID); !errors.Is(err, board.ErrNotFound) {
		t.Errorf("task should be deleted, got %v", err)
	}

	if _, err := runCLI(t, dir, "task", "add", "todo"); !errors.Is(err, board.ErrBlank) {
		t.Errorf("blank content: got %v, want ErrBlank", err)
	}
	if _, err := runCLI(t, dir, "task", "rm", "zzz-missing"); !errors.Is(err, board.ErrNotFound) {
		t.Errorf("missing task: got %v, want ErrNotFound", err)
	}
}

func TestDateLocale(t *testing.T) {
	dir := isolate(t)

	mustRun(t, dir, "-date-locale", "id", "task", "add", "done", "ship")
	b := loadBoard(t, dir)
	date := b.Columns[2].Items[0].Date
	if date == "" || strings.ContainsAny(date, "-/") {
		t.Errorf("unexpected date %q", date)
	}
}

func TestReset(t *testing.T) {
	dir := isolate(t)

	mustRun(t, dir, "column", "rm", "todo")
	if _, err := runCLI(t, dir, "reset"); err == nil {
		t.Fatal("reset without -yes should fail")
	}
	mustRun(t, dir, "reset", "-yes")

	b := loadBoard(t, dir)
	if len(b.Columns) != 3 || b.Columns[0].ID != board.DefaultTodoID {
		t.Errorf("reset board: %+v", b.Columns)
	}
}

func TestKeySelectsBoard(t *testing.T) {
	dir := isolate(t)

	mustRun(t, dir, "-key", "side", "column", "rm", "todo")
	if b := loadBoard(t, dir); len(b.Columns) != 3 {
		t.Errorf("default key should be untouched, got %d columns", len(b.Columns))
	}
	out := mustRun(t, dir, "-key", "side", "show", "-json")
	side, err := snapshot.Decode([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if len(side.Columns) != 2 {
		t.Errorf("side board: got %d columns, want 2", len(side.Columns))
	}
}

func TestDoctor(t *testing.T) {
	dir := isolate(t)

	out, err := runCLI(t, dir, "doctor")
	if err != nil {
		t.Fatalf("doctor on empty store: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No stored board") {
		t.Errorf("doctor should report missing board:\n%s", out)
	}

	mustRun(t, dir, "task", "add", "todo", "x")
	out = mustRun(t, dir, "doctor", "-v")
	if !strings.Contains(out, "Stored board: 3 column(s), 3 task(s)") {
		t.Errorf("doctor output:\n%s", out)
	}

	store, err := kv.NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(snapshot.Key), []byte(`{"todo": {"title": "", "items": []}}`), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = runCLI(t, dir, "doctor")
	if err == nil {
		t.Fatalf("doctor should fail on an invalid board:\n%s", out)
	}
	if !strings.Contains(out, "Stored board is invalid") {
		t.Errorf("doctor output:\n%s", out)
	}
}

func TestInvalidStoredBoardFallsBack(t *testing.T) {
	dir := isolate(t)

	store, err := kv.NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(snapshot.Key), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	out := mustRun(t, dir, "show")
	if !strings.Contains(out, "Setup Project React") {
		t.Errorf("expected default board:\n%s", out)
	}
	data, err := os.ReadFile(store.Path(snapshot.Key))
	if err != nil || string(data) != "not json" {
		t.Errorf("show should not overwrite an unusable board, got %q (%v)", data, err)
	}
}

func TestSeedIDsStableAcrossRuns(t *testing.T) {
	dir := isolate(t)

	first := loadBoard(t, dir)
	second := loadBoard(t, dir)
	if !first.Equal(second) {
		t.Fatalf("default board changed between runs:\n%+v\n%+v", first, second)
	}

	seed := first.Columns[0].Items[0].ID
	mustRun(t, dir, "task", "rm", seed)
	if _, _, err := loadBoard(t, dir).FindTask(seed); !errors.Is(err, board.ErrNotFound) {
		t.Errorf("seed task should be removed, got %v", err)
	}
}

func TestTUIRequiresTTY(t *testing.T) {
	if ui.IsTTY(os.Stdout) {
		t.Skip("stdout is a terminal")
	}
	dir := isolate(t)

	_, err := runCLI(t, dir)
	if err == nil || !strings.Contains(err.Error(), "TTY") {
		t.Errorf("expected TTY error, got %v", err)
	}
}

func TestResolveColumn(t *testing.T) {
	b := board.Board{Columns: []board.Column{
		{ID: "abc123", Title: "Backlog"},
		{ID: "abd456", Title: "Doing"},
		{ID: "xyz", Title: "Doing"},
	}}

	tests := []struct {
		ref     string
		want    string
		wantErr string
	}{
		{"abc123", "abc123", ""},
		{"backlog", "abc123", ""},
		{"abc", "abc123", ""},
		{"ab", "", "ambiguous"},
		{"doing", "", "ambiguous"},
		{"nope", "", "not found"},
		{" ", "", "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := resolveColumn(b, tt.ref)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.want {
				t.Errorf("got %q, want %q", got.ID, tt.want)
			}
		})
	}
}

func TestResolveTask(t *testing.T) {
	b := board.Board{Columns: []board.Column{
		{ID: "a", Title: "A", Items: []board.Task{{ID: "t-100"}, {ID: "t-101"}}},
		{ID: "b", Title: "B", Items: []board.Task{{ID: "u-200"}}},
	}}

	tests := []struct {
		ref     string
		want    string
		wantCol string
		wantErr string
	}{
		{"t-101", "t-101", "a", ""},
		{"u", "u-200", "b", ""},
		{"t-10", "", "", "ambiguous"},
		{"v", "", "", "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, col, err := resolveTask(b, tt.ref)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.want || col != tt.wantCol {
				t.Errorf("got (%q, %q), want (%q, %q)", got.ID, col, tt.want, tt.wantCol)
			}
		})
	}
}
