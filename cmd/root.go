// Package cmd implements the CLI command structure for kanban.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/config"
	"github.com/nibzard/kanban-go/internal/kv"
	"github.com/nibzard/kanban-go/internal/logging"
	"github.com/nibzard/kanban-go/internal/session"
	"github.com/nibzard/kanban-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run executes the kanban CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("kanban", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; the board view is the default
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	case "colors":
		return colorsCommand()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "show", "ls":
		return showCommand(ctx, cfg, remainingArgs)
	case "column", "col":
		return columnCommand(ctx, cfg, remainingArgs)
	case "task":
		return taskCommand(ctx, cfg, remainingArgs)
	case "reset":
		return resetCommand(ctx, cfg, remainingArgs)
	case "doctor":
		return doctorCommand(ctx, cfg, remainingArgs)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newLogger builds the logger for cfg. With quiet set and no log file, log
// output is dropped so it cannot draw over the board view.
func newLogger(cfg *config.Config, quiet bool) (*log.Logger, func() error, error) {
	noop := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, noop, err
		}
		return logging.NewFromConfig(f, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller), f.Close, nil
	}
	if quiet {
		return logging.Discard(), noop, nil
	}
	return logging.NewFromConfig(stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller), noop, nil
}

// openSession opens the configured store and loads the board from it.
func openSession(ctx context.Context, cfg *config.Config, logger *log.Logger) (*session.Session, func() error, error) {
	store, closeStore, err := kv.Open(cfg.KVOptions())
	if err != nil {
		return nil, closeStore, fmt.Errorf("opening %s store: %w", cfg.Backend, err)
	}
	bs := board.NewStore(board.WithDateFormatter(board.DayMonth(cfg.DateLocale)))
	sess, err := session.Open(ctx, store, cfg.Key, bs, logger)
	if err != nil {
		_ = closeStore()
		return nil, func() error { return nil }, err
	}
	return sess, closeStore, nil
}

// withSession runs fn against a freshly opened session and releases it.
func withSession(ctx context.Context, cfg *config.Config, fn func(*session.Session) error) error {
	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, closeStore, err := openSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(sess)
}

// tuiCommand launches the board view.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("kanban tui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inline := fs.Bool("inline", false, "Render inline instead of using the alternate screen")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY (try 'kanban show')")
	}

	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, closeStore, err := openSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	return ui.RunTUI(ctx, sess, ui.WithAltScreen(!*inline))
}

// resetCommand replaces the stored board with the default board.
func resetCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("kanban reset", flag.ContinueOnError)
	fs.SetOutput(stderr)
	yes := fs.Bool("yes", false, "Confirm replacing the board")
	fs.BoolVar(yes, "y", false, "Confirm replacing the board")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if !*yes {
		return fmt.Errorf("reset replaces every column and task; rerun with -yes to confirm")
	}

	return withSession(ctx, cfg, func(sess *session.Session) error {
		if err := sess.Reset(ctx); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Board reset to defaults.")
		return nil
	})
}

// colorsCommand lists the column palette.
func colorsCommand() error {
	for _, sw := range board.Palette {
		marker := " "
		if sw.Color == board.DefaultColor {
			marker = "*"
		}
		fmt.Fprintf(stdout, "%s %-8s %-16s %s\n", marker, sw.Name, sw.Color, sw.Hex)
	}
	return nil
}

func versionCommand() error {
	fmt.Fprintf(stdout, "kanban version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Kanban - A terminal task board")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  kanban [global options] [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                        Open the interactive board (default command)")
	fmt.Fprintln(w, "  show [-json]               Print the board")
	fmt.Fprintln(w, "  column add <title>         Add a column (-color name)")
	fmt.Fprintln(w, "  column edit <column>       Edit a column (-title, -color)")
	fmt.Fprintln(w, "  column rm <column>         Delete a column and its tasks")
	fmt.Fprintln(w, "  task add <column> <text>   Add a task (-priority Low|Medium|High)")
	fmt.Fprintln(w, "  task edit <task>           Edit a task (-content, -priority)")
	fmt.Fprintln(w, "  task rm <task>             Delete a task")
	fmt.Fprintln(w, "  task mv <task> <column>    Move a task (-index n, default end)")
	fmt.Fprintln(w, "  colors                     List column colors")
	fmt.Fprintln(w, "  reset -yes                 Replace the board with the default board")
	fmt.Fprintln(w, "  doctor                     Check config, store and stored board")
	fmt.Fprintln(w, "  version                    Show version information")
	fmt.Fprintln(w, "  help                       Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Columns are referenced by id, id prefix or title; tasks by id or id prefix.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// joinArgs joins positional words into one value.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
