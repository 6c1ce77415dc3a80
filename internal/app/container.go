// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/commonspace/commonspace/internal/domain"
	"github.com/commonspace/commonspace/internal/infra/config"
	"github.com/commonspace/commonspace/internal/infra/executor"
	"github.com/commonspace/commonspace/internal/infra/logging"
	"github.com/commonspace/commonspace/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory the CLI was started in; holds .commonspace.toml
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	Registry *domain.Registry

	// Configuration
	Config Config
}

// New creates a new Container rooted at dir.
func New(dir string) *Container {
	return &Container{
		Executor:      executor.NewClient(),
		ConfigLoader:  config.NewLoader(dir),
		ConfigManager: config.NewManager(dir),
		Logger:        domain.NopLogger{},
		Registry:      domain.DefaultRegistry(),
		Config:        Config{WorkDir: dir},
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, exec domain.CommandExecutor, loader domain.ConfigLoader, manager domain.ConfigManager, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Executor:      exec,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Logger:        logger,
		Registry:      domain.DefaultRegistry(),
		Config:        cfg,
	}
}

// OpenLogger replaces the container's logger with a file logger configured
// from [log] and levelOverride (ignored when empty). The returned function
// closes the log file.
func (c *Container) OpenLogger(cfg domain.LogConfig, levelOverride string) func() error {
	level := cfg.Level
	if levelOverride != "" {
		level = levelOverride
	}
	logger := logging.New(cfg.Dir, logging.ParseLevel(level))
	c.Logger = logger
	return logger.Close
}

// UseCase factory methods

// RunEngineUseCase returns a new RunEngine use case.
func (c *Container) RunEngineUseCase() *usecase.RunEngine {
	return usecase.NewRunEngine(c.Registry, c.Executor, c.ConfigLoader, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
