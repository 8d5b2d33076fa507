// Package cmd implements the CLI command structure for tasker.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/tasker-go/internal/config"
	"github.com/nibzard/tasker-go/internal/console"
	"github.com/nibzard/tasker-go/internal/logging"
	"github.com/nibzard/tasker-go/internal/todo"
	"github.com/nibzard/tasker-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// IO bundles the streams a command reads from and writes to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes the tasker CLI on the process streams.
func Run(ctx context.Context, args []string) error {
	return RunWithIO(ctx, args, IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// RunWithIO executes the tasker CLI on the given streams.
func RunWithIO(ctx context.Context, args []string, streams IO) error {
	fs := flag.NewFlagSet("tasker", flag.ContinueOnError)
	fs.SetOutput(streams.Err)
	fs.Usage = func() {
		printUsage(fs, streams.Err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, streams.Out)
		return nil
	}
	if *showVersion {
		return versionCommand(streams.Out)
	}

	// No command, or a flag in first position, runs the interactive session
	subcommand := "repl"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "repl":
		return replCommand(ctx, cws.Config, streams)
	case "validate":
		return validateCommand(remainingArgs, streams)
	case "view":
		return viewCommand(ctx, cws.Config, remainingArgs, streams)
	case "config":
		return configCommand(cws, remainingArgs, streams)
	case "version":
		return versionCommand(streams.Out)
	case "help":
		printUsage(fs, streams.Out)
		return nil
	default:
		fmt.Fprintf(streams.Err, "Unknown command: %s\n", subcommand)
		printUsage(fs, streams.Err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// replCommand runs the interactive task list session.
func replCommand(ctx context.Context, cfg *config.Config, streams IO) error {
	logger, closeLog, err := setupLogger(cfg, streams.Err)
	if err != nil {
		return err
	}
	defer closeLog()

	session := console.NewSession(
		console.NewPrompter(streams.In, streams.Out),
		streams.Out,
		console.WithLogger(logger),
		console.WithDefaultSnapshot(cfg.SnapshotFile),
	)
	logger.Debug("session started", "snapshot", cfg.SnapshotFile)
	return session.Run(ctx)
}

// setupLogger builds the stderr logger and, when enabled, tees it into a
// JSON session log file.
func setupLogger(cfg *config.Config, stderr io.Writer) (logging.Logger, func() error, error) {
	opts := logging.OptionsFromStrings(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	consoleLogger := logging.New(stderr, opts)
	if !cfg.LogToFile {
		return consoleLogger, func() error { return nil }, nil
	}

	sessionLog, err := logging.NewSessionLog(cfg.LogDir, cfg.ProjectRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("creating session log: %w", err)
	}
	consoleLogger.Debug("writing session log", "path", sessionLog.LogPath)
	return logging.Tee(consoleLogger, sessionLog.Logger), sessionLog.Close, nil
}

// validateCommand checks snapshot files against the snapshot schema.
func validateCommand(args []string, streams IO) error {
	if len(args) == 0 {
		return fmt.Errorf("validate requires at least one file")
	}

	failed := 0
	for _, path := range args {
		tasks, err := todo.ReadFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(streams.Out, "%s: invalid\n", path)
			if verrs := todo.ValidationErrors(err); len(verrs) > 0 {
				for _, ve := range verrs {
					fmt.Fprintf(streams.Out, "  - %s\n", ve)
				}
			} else {
				fmt.Fprintf(streams.Out, "  - %v\n", err)
			}
			continue
		}
		fmt.Fprintf(streams.Out, "%s: ok (%d tasks)\n", path, len(tasks))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d snapshot files invalid", failed, len(args))
	}
	return nil
}

// viewCommand opens a snapshot file in the terminal viewer.
func viewCommand(ctx context.Context, cfg *config.Config, args []string, streams IO) error {
	if !ui.IsTTY(streams.Out) {
		return fmt.Errorf("view requires a TTY")
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	path := cfg.SnapshotFile
	if len(args) == 1 {
		path = args[0]
	}
	return ui.RunViewer(ctx, path)
}

// configCommand prints an example config file, or with "show" the
// effective configuration and where each value came from.
func configCommand(cws *config.ConfigWithSources, args []string, streams IO) error {
	if len(args) == 0 {
		fmt.Fprint(streams.Out, config.ExampleConfig())
		return nil
	}
	if args[0] != "show" || len(args) > 1 {
		return fmt.Errorf("unknown config arguments: %v", args)
	}

	for _, path := range cws.Files {
		fmt.Fprintf(streams.Out, "# loaded %s\n", path)
	}
	for _, entry := range cws.Entries() {
		fmt.Fprintf(streams.Out, "%-15s = %-30q # %s\n", entry.Name, entry.Value, entry.Source)
	}
	return nil
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "tasker version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tasker - an interactive task list manager")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasker [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  repl             Interactive session (default command)")
	fmt.Fprintln(w, "  validate <file>  Check snapshot files against the snapshot schema")
	fmt.Fprintln(w, "  view [file]      Browse a snapshot file in a terminal UI")
	fmt.Fprintln(w, "  config [show]    Print an example config, or the effective config")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
