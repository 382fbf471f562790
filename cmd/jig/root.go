package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Raunow/jig/internal/config"
	"github.com/Raunow/jig/internal/log"
	"github.com/Raunow/jig/internal/output"
)

// annotationRequiresConfig marks commands that need a resolved configuration
// before they run.
const annotationRequiresConfig = "jig/requires-config"

// Command group IDs for organizing help output
const (
	GroupConfig = "config"
)

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "jig",
		Short: "Jira issues from the command line",
		Long: `jig works with Jira issues from your terminal and git workspace.

Settings come from the global config file and an optional .jig.toml at the
root of the current git repository, which overrides the global values.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))

			if cmd.Annotations[annotationRequiresConfig] == "true" {
				cfg, err := config.Load(ctx)
				if err != nil {
					return err
				}
				ctx = config.WithConfig(ctx, cfg)
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show which config files are read")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"})
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// stdout for primary data; the logger is attached once flags are parsed
	ctx = output.WithPrinter(ctx, os.Stdout)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Stderr.WriteString("\nRun 'jig -h' for help\n")
		cancel()
		os.Exit(1)
	}
}
