package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/config"
	"github.com/nibzard/kanban-go/internal/session"
)

// taskCommand dispatches task subcommands.
func taskCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: kanban task add|edit|rm|mv ...")
	}
	switch args[0] {
	case "add", "new":
		return taskAdd(ctx, cfg, args[1:])
	case "edit":
		return taskEdit(ctx, cfg, args[1:])
	case "rm", "delete":
		return taskRemove(ctx, cfg, args[1:])
	case "mv", "move":
		return taskMove(ctx, cfg, args[1:])
	default:
		return fmt.Errorf("unknown task command: %s", args[0])
	}
}

func taskAdd(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("kanban task add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	priority := fs.String("priority", string(board.PriorityLow), "Priority (Low|Medium|High)")
	fs.StringVar(priority, "p", string(board.PriorityLow), "Priority (shorthand)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: kanban task add [-priority P] <column> <content>")
	}
	content := joinArgs(fs.Args()[1:])

	return withSession(ctx, cfg, func(sess *session.Session) error {
		col, err := resolveColumn(sess.Board(), fs.Arg(0))
		if err != nil {
			return err
		}
		if err := sess.Dispatch(ctx, session.AddTask(col.ID, content, board.ParsePriority(*priority))); err != nil {
			return err
		}
		updated, err := sess.Board().Column(col.ID)
		if err != nil {
			return err
		}
		added := updated.Items[len(updated.Items)-1]
		fmt.Fprintf(stdout, "Added task [%s] to %q\n", added.ID, col.Title)
		return nil
	})
}

func taskEdit(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("kanban task edit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	content := fs.String("content", "", "New content (default: keep)")
	priority := fs.String("priority", "", "New priority (default: keep)")
	fs.StringVar(priority, "p", "", "New priority (shorthand)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: kanban task edit [-content C] [-priority P] <task>")
	}

	return withSession(ctx, cfg, func(sess *session.Session) error {
		t, colID, err := resolveTask(sess.Board(), fs.Arg(0))
		if err != nil {
			return err
		}
		newContent, newPriority := t.Content, t.Priority
		if *content != "" {
			newContent = *content
		}
		if *priority != "" {
			newPriority = board.ParsePriority(*priority)
		}
		if err := sess.Dispatch(ctx, session.EditTask(colID, t.ID, newContent, newPriority)); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Updated task [%s]\n", t.ID)
		return nil
	})
}

func taskRemove(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: kanban task rm <task>")
	}

	return withSession(ctx, cfg, func(sess *session.Session) error {
		t, colID, err := resolveTask(sess.Board(), args[0])
		if err != nil {
			return err
		}
		if err := sess.Dispatch(ctx, session.DeleteTask(colID, t.ID)); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Deleted task %q\n", t.Content)
		return nil
	})
}

func taskMove(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("kanban task mv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	index := fs.Int("index", -1, "Position in the destination column (default: end)")
	fs.IntVar(index, "i", -1, "Position (shorthand)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: kanban task mv [-index n] <task> <column>")
	}

	return withSession(ctx, cfg, func(sess *session.Session) error {
		b := sess.Board()
		t, srcID, err := resolveTask(b, fs.Arg(0))
		if err != nil {
			return err
		}
		dst, err := resolveColumn(b, fs.Arg(1))
		if err != nil {
			return err
		}
		src, err := b.Column(srcID)
		if err != nil {
			return err
		}
		dstIdx := *index
		if dstIdx < 0 {
			dstIdx = len(dst.Items)
		}
		if err := sess.Dispatch(ctx, session.MoveTask(srcID, src.IndexOf(t.ID), dst.ID, dstIdx)); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Moved task %q to %q\n", t.Content, dst.Title)
		return nil
	})
}
