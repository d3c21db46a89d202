package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/config"
	"github.com/nibzard/kanban-go/internal/kv"
	"github.com/nibzard/kanban-go/internal/snapshot"
)

// pinger is implemented by stores that can check their connection.
type pinger interface {
	Ping(ctx context.Context) error
}

// doctorCommand checks the configuration, the store and the stored board.
func doctorCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("kanban doctor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fmt.Fprintln(stdout, "Kanban Doctor")
	fmt.Fprintln(stdout, "=============")
	fmt.Fprintln(stdout)

	allOK := true

	// Config
	fmt.Fprintln(stdout, "Config:")
	if len(cfg.Files) == 0 {
		fmt.Fprintln(stdout, "  ✅ Files: none (using defaults)")
	} else {
		fmt.Fprintf(stdout, "  ✅ Files: %s\n", strings.Join(cfg.Files, ", "))
	}
	fmt.Fprintf(stdout, "  ✅ Backend: %s\n", cfg.Backend)
	switch cfg.Backend {
	case kv.BackendFile:
		fmt.Fprintf(stdout, "  ✅ Data dir: %s\n", cfg.DataDir)
	case kv.BackendRedis:
		fmt.Fprintf(stdout, "  ✅ Redis: %s db=%d prefix=%q\n", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Prefix)
	case kv.BackendMemory:
		fmt.Fprintln(stdout, "  ⚠️  Memory backend: changes are lost when the process exits")
	}
	fmt.Fprintf(stdout, "  ✅ Key: %s\n", cfg.Key)
	fmt.Fprintf(stdout, "  ✅ Date locale: %s\n", cfg.DateLocale)
	fmt.Fprintln(stdout)

	// Store
	fmt.Fprintln(stdout, "Store:")
	store, closeStore, err := kv.Open(cfg.KVOptions())
	defer closeStore()
	if err != nil {
		fmt.Fprintf(stdout, "  ❌ Open: %v\n", err)
		fmt.Fprintln(stdout)
		return doctorResult(false)
	}
	if p, ok := store.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			fmt.Fprintf(stdout, "  ❌ Ping: %v\n", err)
			fmt.Fprintln(stdout)
			return doctorResult(false)
		}
		fmt.Fprintln(stdout, "  ✅ Ping")
	}
	if f, ok := store.(*kv.File); ok {
		fmt.Fprintf(stdout, "  ✅ Board file: %s\n", f.Path(cfg.Key))
	}

	res, err := snapshot.Load(ctx, store, cfg.Key, board.NewStore())
	switch {
	case err != nil:
		fmt.Fprintf(stdout, "  ❌ Read: %v\n", err)
		allOK = false
	case !res.Fallback:
		fmt.Fprintf(stdout, "  ✅ Stored board: %d column(s), %d task(s)\n", len(res.Board.Columns), res.Board.TaskCount())
		if *verbose {
			for _, col := range res.Board.Columns {
				fmt.Fprintf(stdout, "    - %s [%s]: %d task(s)\n", col.Title, col.ID, len(col.Items))
			}
		}
	case res.Reason == snapshot.ReasonAbsent:
		fmt.Fprintln(stdout, "  ⚠️  No stored board (the default board will be used)")
	default:
		fmt.Fprintf(stdout, "  ❌ Stored board is %s (the default board will be used):\n", res.Reason)
		var de *snapshot.DecodeError
		if errors.As(res.Err, &de) {
			for _, e := range de.Errors {
				fmt.Fprintf(stdout, "     - %v\n", e)
			}
		}
		allOK = false
	}
	fmt.Fprintln(stdout)

	return doctorResult(allOK)
}

func doctorResult(ok bool) error {
	if ok {
		fmt.Fprintln(stdout, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(stdout, "⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}
