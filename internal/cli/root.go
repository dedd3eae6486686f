package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"enumevent-generator/internal/config"
	"enumevent-generator/internal/decl"
	"enumevent-generator/internal/diagnostic"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	rootCmd := &cobra.Command{
		Use:   "enumevent-generator",
		Short: "Generate Go event types from enum declarations",
		Long: "enumevent-generator turns tagged-union enum declarations (YAML) into one Go\n" +
			"package per enum, with one struct per variant implementing the event contract.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newGenCmd(a))
	rootCmd.AddCommand(newPlanCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newIdentCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// load reads a declaration file and resolves the configuration of the
// command against it.
func (a *app) load(cmd *cobra.Command, path string) (*decl.File, config.Config, error) {
	f, err := decl.LoadFile(path)
	if err != nil {
		return nil, config.Config{}, err
	}

	cfg, err := config.Resolve(f.Options, cmd.Flags(), nil)
	if err != nil {
		return nil, config.Config{}, err
	}

	a.logger.Debug("loaded declaration", "file", path, "enums", len(f.Enums),
		"output_dir", cfg.OutputDir, "runtime_import", cfg.RuntimeImport)

	return f, cfg, nil
}

// report logs diagnostics at the level matching their severity.
func (a *app) report(ctx context.Context, diags diagnostic.Diagnostics) {
	log := func(level slog.Level, d diagnostic.Diagnostic) {
		attrs := []any{"code", d.Code}
		if d.Enum != "" {
			attrs = append(attrs, "enum", d.Enum)
		}

		if d.Location != "" {
			attrs = append(attrs, "location", d.Location)
		}

		if len(d.Suggestions) > 0 {
			attrs = append(attrs, "suggestions", d.Suggestions)
		}

		a.logger.Log(ctx, level, d.Message, attrs...)
	}

	for _, d := range diags.Errors {
		log(slog.LevelError, d)
	}

	for _, d := range diags.Warnings {
		log(slog.LevelWarn, d)
	}

	for _, d := range diags.Infos {
		log(slog.LevelDebug, d)
	}
}
