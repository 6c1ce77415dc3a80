// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/commonspace/commonspace/internal/domain"
)

// RunEngineInput contains the parameters for dispatching an engine command.
// Fields are ordered to minimize memory padding.
type RunEngineInput struct {
	Streams domain.Streams // Streams handed to the engine process
	Config  *domain.Config // Already loaded configuration; loaded after validation when nil
	Command string         // Subcommand name (required)
	Args    []string       // Raw positional arguments
	DryRun  bool           // Validate and plan only
}

// RunEngineOutput contains the result of dispatching an engine command.
type RunEngineOutput struct {
	Plan   []*domain.ExecCommand // Invocations in execution order
	Values []domain.Value        // Validated arguments
}

// RunEngine validates a command's arguments and invokes the routing engine.
type RunEngine struct {
	registry *domain.Registry
	executor domain.CommandExecutor
	config   domain.ConfigLoader
	logger   domain.Logger
}

// NewRunEngine creates a new RunEngine use case.
func NewRunEngine(
	registry *domain.Registry,
	executor domain.CommandExecutor,
	config domain.ConfigLoader,
	logger domain.Logger,
) *RunEngine {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &RunEngine{
		registry: registry,
		executor: executor,
		config:   config,
		logger:   logger,
	}
}

// Execute looks up the command, validates every argument before any process
// starts, builds the invocation plan and runs it step by step. The first
// failing step stops the plan and is returned as *domain.EngineError.
func (uc *RunEngine) Execute(ctx context.Context, in RunEngineInput) (*RunEngineOutput, error) {
	spec, values, err := uc.Validate(in.Command, in.Args)
	if err != nil {
		return nil, err
	}

	cfg := in.Config
	if cfg == nil {
		if cfg, err = uc.config.Load(); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	plan, err := spec.Plan(cfg.Engine, values)
	if err != nil {
		return nil, err
	}

	out := &RunEngineOutput{Plan: plan, Values: values}
	if in.DryRun {
		uc.logger.Debug("dispatch", fmt.Sprintf("%s: dry run, %d step(s) planned", spec.Name, len(plan)))
		return out, nil
	}

	for _, cmd := range plan {
		uc.logger.Info("engine", fmt.Sprintf("%s %s: %s", spec.Name, cmd.Step, cmd.String()))
		if err := uc.executor.Run(ctx, cmd, in.Streams); err != nil {
			uc.logger.Error("engine", fmt.Sprintf("%s %s failed: %v", spec.Name, cmd.Step, err))
			var engineErr *domain.EngineError
			if errors.As(err, &engineErr) {
				return out, err
			}
			return out, &domain.EngineError{
				Step:     cmd.Step,
				Program:  cmd.Program,
				Args:     cmd.Args,
				ExitCode: -1,
				Err:      err,
			}
		}
	}

	uc.logger.Info("engine", fmt.Sprintf("%s completed (%s)", spec.Name, strings.Join(stepNames(plan), ", ")))
	return out, nil
}

// Validate resolves name and checks args against its argument slots.
// It touches neither the configuration nor the engine.
func (uc *RunEngine) Validate(name string, args []string) (domain.CommandSpec, []domain.Value, error) {
	spec, ok := uc.registry.Lookup(name)
	if !ok {
		err := uc.registry.UnknownCommandError(name)
		uc.logger.Warn("dispatch", err.Error())
		return domain.CommandSpec{}, nil, err
	}

	values, err := spec.Validate(args)
	if err != nil {
		uc.logger.Warn("dispatch", fmt.Sprintf("%s: %v", spec.Name, err))
		return domain.CommandSpec{}, nil, err
	}
	return spec, values, nil
}

func stepNames(plan []*domain.ExecCommand) []string {
	names := make([]string, len(plan))
	for i, cmd := range plan {
		names[i] = cmd.Step
	}
	return names
}
