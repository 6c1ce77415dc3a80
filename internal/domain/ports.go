package domain

import (
	"context"
	"io"
)

// Streams are the standard streams handed to an engine process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Run executes cmd with the given streams attached and blocks until it exits.
	// A start failure or non-zero exit is returned as *EngineError.
	Run(ctx context.Context, cmd *ExecCommand, streams Streams) error
}

// ConfigLoader loads the merged configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- project).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	GetGlobalConfigInfo() ConfigInfo
	GetProjectConfigInfo() ConfigInfo
	InitGlobalConfig(cfg *Config) error
	InitProjectConfig(cfg *Config) error
}

// Logger records diagnostic messages by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
