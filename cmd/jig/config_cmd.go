package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Raunow/jig/internal/config"
	"github.com/Raunow/jig/internal/log"
	"github.com/Raunow/jig/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Inspect configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Inspect jig configuration.

Global config:    <user config dir>/jig/config.toml
Workspace config: .jig.toml (at the git repository root)

Workspace settings override global ones. If only one file can be read and
parsed, it is used on its own.`,
		Example: `  jig config show          # Show the resolved configuration
  jig config path          # Show which files are read
  jig config init          # Print a global config template
  jig config init --local  # Print a workspace config template`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "show",
		Short:       "Show the resolved configuration",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationRequiresConfig: "true"},
		Long: `Show the resolved configuration.

Prints the result of merging the global and workspace files, with defaults
filled in, the URL normalized, and tokens masked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			if cfg == nil {
				return errors.New("no configuration loaded")
			}

			out := output.FromContext(ctx)
			out.Printf("# credential: %s\n", cfg.Tracker.Credential)
			return out.TOML(cfg.Effective())
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			logger := log.FromContext(ctx)

			globalPath, err := config.GlobalConfigPath()
			if err != nil {
				return err
			}
			workspacePath, err := config.WorkspaceConfigPath()
			if err != nil {
				return err
			}

			out.Println("global:   ", globalPath+existsNote(globalPath))
			out.Println("workspace:", workspacePath+existsNote(workspacePath))

			if existsNote(globalPath) != "" {
				logger.Printf("create the global config with: jig config init > %s\n", globalPath)
			}
			return nil
		},
	}
}

func existsNote(path string) string {
	if _, err := os.Stat(path); err != nil {
		return " (not found)"
	}
	return ""
}

func newConfigInitCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Print a config template",
		Args:  cobra.NoArgs,
		Long: `Print a commented config template to stdout.

Redirect it to the path shown by 'jig config path' to start a config file.`,
		Example: `  jig config init > ~/.config/jig/config.toml
  jig config init --local > .jig.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			if local {
				out.Print(config.DefaultLocalConfig())
				return nil
			}
			out.Print(config.DefaultConfig())
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Print the per-workspace .jig.toml template")

	return cmd
}
