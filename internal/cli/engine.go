package cli

import (
	"fmt"
	"strings"

	"github.com/commonspace/commonspace/internal/app"
	"github.com/commonspace/commonspace/internal/domain"
	"github.com/commonspace/commonspace/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newEngineCommand creates the subcommand for one registry entry.
// Flag parsing is done by splitArgs so that negative coordinates such as
// "-33.86,151.21" are accepted as positional arguments.
func newEngineCommand(c *app.Container, opts *rootOptions, spec domain.CommandSpec) *cobra.Command {
	return &cobra.Command{
		Use:                spec.Usage(),
		Short:              spec.Short,
		Long:               engineLongHelp(spec),
		Example:            "  commonspace " + engineExample(spec),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, help, err := splitArgs(cmd, args)
			if err != nil {
				return err
			}
			if help {
				return cmd.Help()
			}
			return runEngine(cmd, c, opts, spec.Name, positional)
		},
	}
}

func engineLongHelp(spec domain.CommandSpec) string {
	var b strings.Builder
	if spec.Long != "" {
		b.WriteString(spec.Long)
	} else {
		b.WriteString(spec.Short + ".")
	}
	b.WriteString("\n\nArguments:\n")

	width := 0
	for _, a := range spec.Args {
		width = max(width, len(a.Name))
	}
	for _, a := range spec.Args {
		fmt.Fprintf(&b, "  %-*s  %s (%s, e.g. %s)\n", width, a.Name, a.Help, a.Kind, a.Example)
	}
	return strings.TrimRight(b.String(), "\n")
}

func engineExample(spec domain.CommandSpec) string {
	parts := []string{spec.Name}
	for _, a := range spec.Args {
		parts = append(parts, a.Example)
	}
	return strings.Join(parts, " ")
}

// splitArgs separates long flags from positional arguments. Single-dash
// tokens are positional; "--" ends flag parsing.
func splitArgs(cmd *cobra.Command, args []string) (positional []string, help bool, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(positional, args[i+1:]...), help, nil
		case arg == "-h" || arg == "--help":
			help = true
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			flag := lookupFlag(cmd, name)
			if flag == nil {
				return nil, false, fmt.Errorf("%w: unknown flag: --%s", domain.ErrInvalidArgument, name)
			}
			if !hasValue {
				if flag.NoOptDefVal != "" {
					value = flag.NoOptDefVal
				} else {
					if i+1 >= len(args) {
						return nil, false, fmt.Errorf("%w: flag needs an argument: --%s", domain.ErrInvalidArgument, name)
					}
					i++
					value = args[i]
				}
			}
			if err := flag.Value.Set(value); err != nil {
				return nil, false, fmt.Errorf("%w: invalid value %q for --%s: %v", domain.ErrInvalidArgument, value, name, err)
			}
			flag.Changed = true
		default:
			positional = append(positional, arg)
		}
	}
	return positional, help, nil
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.LocalFlags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

// runEngine validates the arguments, loads the configuration once, opens the
// log and dispatches name.
func runEngine(cmd *cobra.Command, c *app.Container, opts *rootOptions, name string, args []string) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	// Argument errors are reported before the configuration is read.
	if _, _, err := c.RunEngineUseCase().Validate(name, args); err != nil {
		return err
	}

	cfg, err := c.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	writeWarnings(cmd.ErrOrStderr(), cfg.Warnings)

	closeLog := c.OpenLogger(cfg.Log, opts.logLevel)
	defer func() { _ = closeLog() }()

	uc := c.RunEngineUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.RunEngineInput{
		Config:  cfg,
		Command: name,
		Args:    args,
		DryRun:  opts.dryRun,
		Streams: domain.Streams{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
	})
	if err != nil {
		return err
	}

	if opts.dryRun {
		return writePlan(cmd.OutOrStdout(), out.Plan, opts.format)
	}
	return nil
}
