package domain

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// InvocationMode selects how a command reaches the engine.
type InvocationMode int

// Invocation modes.
const (
	// ModeRunner runs the operation through the configured runner prefix.
	ModeRunner InvocationMode = iota
	// ModeBuildThenRun builds the packaged artifact and then runs it directly.
	ModeBuildThenRun
)

// Plan step names.
const (
	StepBuild = "build"
	StepRun   = "run"
)

// CommandSpec defines one subcommand: its positional arguments and how the
// validated values become an engine invocation.
type CommandSpec struct {
	Name  string
	Short string
	Long  string
	Args  []ArgSpec
	Mode  InvocationMode
}

// Usage returns the one-line usage, e.g. "spt LATLONG STARTTIME DURATION".
func (s CommandSpec) Usage() string {
	parts := []string{s.Name}
	for _, a := range s.Args {
		parts = append(parts, a.Name)
	}
	return strings.Join(parts, " ")
}

// Validate checks the argument count and runs each slot's validator
// left to right, stopping at the first failure.
func (s CommandSpec) Validate(raw []string) ([]Value, error) {
	if len(raw) != len(s.Args) {
		return nil, fmt.Errorf("%w: %s expects %d argument(s) (%s), got %d",
			ErrInvalidArgument, s.Name, len(s.Args), strings.TrimPrefix(s.Usage(), s.Name+" "), len(raw))
	}
	values := make([]Value, 0, len(raw))
	for i, a := range s.Args {
		v, err := a.Parse(raw[i])
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Plan builds the ordered engine invocations for validated values.
func (s CommandSpec) Plan(cfg EngineConfig, values []Value) ([]*ExecCommand, error) {
	if len(values) != len(s.Args) {
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrInvalidArgument, s.Name, len(s.Args), len(values))
	}
	tokens := make([]string, 0, len(values)*2)
	for _, v := range values {
		tokens = append(tokens, v.Tokens()...)
	}

	switch s.Mode {
	case ModeBuildThenRun:
		return buildThenRunPlan(cfg, s.Name, tokens)
	default:
		return runnerPlan(cfg, s.Name, tokens)
	}
}

func runnerPlan(cfg EngineConfig, op string, tokens []string) ([]*ExecCommand, error) {
	if len(cfg.Runner) == 0 || cfg.Runner[0] == "" {
		return nil, fmt.Errorf("%w: engine.runner is empty", ErrEngineNotConfigured)
	}
	args := slices.Clone(cfg.Runner[1:])
	if cfg.RunTask != "" {
		for _, tok := range tokens {
			if !runTaskSafe(tok) {
				return nil, fmt.Errorf("%w: %q cannot be passed through run_task %q (no blanks, ';' or '\"'); set engine.run_task = \"\" to pass arguments separately",
					ErrInvalidArgument, tok, cfg.RunTask)
			}
		}
		args = append(args, strings.Join(append([]string{cfg.RunTask, op}, tokens...), " "))
	} else {
		args = append(args, op)
		args = append(args, tokens...)
	}
	return []*ExecCommand{NewCommand(StepRun, cfg.Runner[0], args, cfg.Dir)}, nil
}

// runTaskSafe reports whether tok survives being joined into a single
// runner command line: the runner splits on blanks and ';' and honors quotes.
func runTaskSafe(tok string) bool {
	return !strings.ContainsFunc(tok, func(r rune) bool {
		return unicode.IsSpace(r) || r == ';' || r == '"'
	})
}

func buildThenRunPlan(cfg EngineConfig, op string, tokens []string) ([]*ExecCommand, error) {
	if cfg.Java == "" {
		return nil, fmt.Errorf("%w: engine.java is empty", ErrEngineNotConfigured)
	}
	if cfg.Artifact == "" {
		return nil, fmt.Errorf("%w: engine.artifact is empty", ErrEngineNotConfigured)
	}

	var plan []*ExecCommand
	if len(cfg.Build) > 0 && cfg.Build[0] != "" {
		plan = append(plan, NewCommand(StepBuild, cfg.Build[0], slices.Clone(cfg.Build[1:]), cfg.Dir))
	}

	var args []string
	if cfg.Heap != "" {
		args = append(args, "-Xmx"+cfg.Heap)
	}
	args = append(args, "-jar", cfg.Artifact, op)
	args = append(args, tokens...)
	return append(plan, NewCommand(StepRun, cfg.Java, args, cfg.Dir)), nil
}

// Registry is a fixed set of commands keyed by name. It is read-only once built.
type Registry struct {
	specs map[string]CommandSpec
	order []string
}

// NewRegistry builds a registry from specs. It panics on duplicate names.
func NewRegistry(specs ...CommandSpec) *Registry {
	r := &Registry{specs: make(map[string]CommandSpec, len(specs))}
	for _, s := range specs {
		if _, exists := r.specs[s.Name]; exists {
			panic(fmt.Sprintf("command %s already registered", s.Name))
		}
		r.specs[s.Name] = s
		r.order = append(r.order, s.Name)
	}
	return r
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (CommandSpec, bool) {
	s, ok := r.specs[name]
	if !ok {
		return CommandSpec{}, false
	}
	s.Args = slices.Clone(s.Args)
	return s, true
}

// Names returns the registered command names in declaration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Commands returns all command specs in declaration order.
func (r *Registry) Commands() []CommandSpec {
	out := make([]CommandSpec, 0, len(r.order))
	for _, name := range r.order {
		s, _ := r.Lookup(name)
		out = append(out, s)
	}
	return out
}

// UnknownCommandError returns ErrUnknownCommand for name, listing valid names.
func (r *Registry) UnknownCommandError(name string) error {
	names := r.Names()
	slices.Sort(names)
	return fmt.Errorf("%w %q (choose from %s)", ErrUnknownCommand, name, strings.Join(names, ", "))
}

// Shared argument slots.
var (
	argLatLong = ArgSpec{
		Name:    "LATLONG",
		Kind:    ArgCoordinate,
		Help:    "Latitude and longitude of the start point",
		Example: "39.958823,-75.158553",
	}
	argEndLatLong = ArgSpec{
		Name:    "LATLONG",
		Kind:    ArgCoordinate,
		Help:    "Latitude and longitude of the destination point",
		Example: "39.952584,-75.165222",
	}
	argStartTime = ArgSpec{
		Name:    "STARTTIME",
		Kind:    ArgTimeOfDay,
		Help:    "Start time of trip (24-hour HH:MM)",
		Example: "15:02",
	}
	argDuration = ArgSpec{
		Name:    "DURATION",
		Kind:    ArgDuration,
		Help:    "Maximum duration of trip (e.g. 1h30m, 45m, 90s)",
		Example: "1h30m",
	}
	argConfig = ArgSpec{
		Name:    "CONFIG",
		Kind:    ArgRaw,
		Help:    "Path to configuration data",
		Example: "./config.json",
	}
)

var defaultRegistry = NewRegistry(
	CommandSpec{
		Name:  "nearest",
		Short: "Find the graph vertex nearest to a point",
		Args: []ArgSpec{{
			Name:    "LATLONG",
			Kind:    ArgCoordinate,
			Help:    "Latitude and longitude to find the nearest vertex to",
			Example: "39.958823,-75.158553",
		}},
	},
	CommandSpec{
		Name:  "spt",
		Short: "Compute a shortest path tree from a point within a time budget",
		Args:  []ArgSpec{argLatLong, argStartTime, argDuration},
	},
	CommandSpec{
		Name:  "traveltime",
		Short: "Compute the travel time between two points within a time budget",
		Args:  []ArgSpec{argLatLong, argEndLatLong, argStartTime, argDuration},
	},
	CommandSpec{
		Name:  "list",
		Short: "List destinations reachable from a point within a time budget",
		Args:  []ArgSpec{argConfig, argLatLong, argStartTime, argDuration},
	},
	CommandSpec{
		Name:  "getoutgoing",
		Short: "List the outgoing edges of a graph node",
		Args: []ArgSpec{{
			Name:    "NODEID",
			Kind:    ArgRaw,
			Help:    "OSM node id",
			Example: "109729",
		}},
	},
	CommandSpec{
		Name:  "buildgraph",
		Short: "Build the routing graph from source data",
		Long: `Build the routing graph from source data.

Runs the engine build step to produce the packaged artifact, then runs the
artifact directly with the configured heap size.`,
		Args: []ArgSpec{argConfig},
		Mode: ModeBuildThenRun,
	},
)

// DefaultRegistry returns the built-in command table.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
