package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/config"
	"github.com/nibzard/kanban-go/internal/session"
)

// columnCommand dispatches column subcommands.
func columnCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: kanban column add|edit|rm ...")
	}
	switch args[0] {
	case "add", "new":
		return columnAdd(ctx, cfg, args[1:])
	case "edit":
		return columnEdit(ctx, cfg, args[1:])
	case "rm", "delete":
		return columnRemove(ctx, cfg, args[1:])
	default:
		return fmt.Errorf("unknown column command: %s", args[0])
	}
}

func columnAdd(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("kanban column add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	color := fs.String("color", string(board.DefaultColor), "Column color (name or token, see 'kanban colors')")
	if err := fs.Parse(args); err != nil {
		return err
	}
	title := joinArgs(fs.Args())

	return withSession(ctx, cfg, func(sess *session.Session) error {
		if err := sess.Dispatch(ctx, session.AddColumn(title, board.ParseColor(*color))); err != nil {
			return err
		}
		cols := sess.Board().Columns
		added := cols[len(cols)-1]
		fmt.Fprintf(stdout, "Added column %q [%s]\n", added.Title, added.ID)
		return nil
	})
}

func columnEdit(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("kanban column edit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	title := fs.String("title", "", "New title (default: keep)")
	color := fs.String("color", "", "New color (default: keep)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: kanban column edit [-title T] [-color C] <column>")
	}

	return withSession(ctx, cfg, func(sess *session.Session) error {
		col, err := resolveColumn(sess.Board(), fs.Arg(0))
		if err != nil {
			return err
		}
		newTitle, newColor := col.Title, col.Color
		if *title != "" {
			newTitle = *title
		}
		if *color != "" {
			newColor = board.ParseColor(*color)
		}
		if err := sess.Dispatch(ctx, session.EditColumn(col.ID, newTitle, newColor)); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Updated column %q\n", newTitle)
		return nil
	})
}

func columnRemove(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: kanban column rm <column>")
	}

	return withSession(ctx, cfg, func(sess *session.Session) error {
		col, err := resolveColumn(sess.Board(), args[0])
		if err != nil {
			return err
		}
		if err := sess.Dispatch(ctx, session.DeleteColumn(col.ID)); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Deleted column %q and %d task(s)\n", col.Title, len(col.Items))
		return nil
	})
}
