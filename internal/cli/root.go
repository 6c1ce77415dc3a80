// Package cli provides the command-line interface for commonspace.
package cli

import (
	"fmt"

	"github.com/commonspace/commonspace/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupRouting = "routing"
	groupSetup   = "setup"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	format   string
	logLevel string
	dryRun   bool
}

// NewRootCommand creates the root command for commonspace.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "commonspace",
		Short: "Multimodal routing engine command-line front end",
		Long: `commonspace validates routing queries and hands them to the routing engine.

Coordinates are written as "<lat>,<lng>" (e.g. 39.958823,-75.158553), start
times as 24-hour "HH:MM" (e.g. 15:02) and trip budgets as compound durations
(e.g. 1h30m, 45m, 90s). Arguments are checked before the engine starts.

Engine settings are read from ~/.config/commonspace/config.toml and
.commonspace.toml in the current directory (see "commonspace config").`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		// Unmatched names reach RunE so they are reported as unknown commands.
		// Root flags are split by hand there, like the engine subcommands,
		// so "foo -1,2" fails on the name rather than on "-1".
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, help, err := splitArgs(cmd, args)
			if err != nil {
				return err
			}
			if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Name(), cmd.Version)
				return nil
			}
			if help || len(positional) == 0 {
				return cmd.Help()
			}
			return runEngine(cmd, c, opts, positional[0], positional[1:])
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Validate arguments and print the engine invocation without running it")
	root.PersistentFlags().StringVar(&opts.format, "format", formatText, "Dry-run output format: text, yaml or toml")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	root.AddGroup(
		&cobra.Group{ID: groupRouting, Title: "Routing Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	for _, spec := range c.Registry.Commands() {
		engineCmd := newEngineCommand(c, opts, spec)
		engineCmd.GroupID = groupRouting
		root.AddCommand(engineCmd)
	}

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	commandsCmd := newCommandsCommand(c)
	commandsCmd.GroupID = groupSetup

	root.AddCommand(configCmd, commandsCmd)

	return root
}
