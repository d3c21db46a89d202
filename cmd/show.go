package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/config"
	"github.com/nibzard/kanban-go/internal/session"
	"github.com/nibzard/kanban-go/internal/snapshot"
)

// showCommand prints the board as text or as the stored JSON snapshot.
func showCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("kanban show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "Print the snapshot as JSON")
	fullIDs := fs.Bool("ids", false, "Print full ids")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return withSession(ctx, cfg, func(sess *session.Session) error {
		b := sess.Board()
		if *asJSON {
			data, err := snapshot.Encode(b)
			if err != nil {
				return err
			}
			_, err = stdout.Write(data)
			return err
		}
		printBoard(b, *fullIDs)
		return nil
	})
}

func printBoard(b board.Board, fullIDs bool) {
	if len(b.Columns) == 0 {
		fmt.Fprintln(stdout, "No columns.")
		return
	}
	id := shortID
	if fullIDs {
		id = func(s string) string { return s }
	}
	for i, col := range b.Columns {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stdout, "%s [%s] (%s, %d)\n", col.Title, id(col.ID), col.Color.Swatch().Name, len(col.Items))
		if len(col.Items) == 0 {
			fmt.Fprintln(stdout, "  (empty)")
			continue
		}
		for _, t := range col.Items {
			fmt.Fprintf(stdout, "  %-8s %-6s %-7s %s\n", id(t.ID), t.Priority, t.Date, t.Content)
		}
	}
}
