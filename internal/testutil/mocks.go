// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/commonspace/commonspace/internal/domain"
)

// MockExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockExecutor struct {
	// Errors maps a step name to the error returned when that step runs.
	Errors   map[string]error
	Commands []*domain.ExecCommand
	Streams  []domain.Streams
	mu       sync.Mutex
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{Errors: make(map[string]error)}
}

// Ensure MockExecutor implements domain.CommandExecutor.
var _ domain.CommandExecutor = (*MockExecutor)(nil)

// Run records the command and returns the configured error for its step.
func (m *MockExecutor) Run(_ context.Context, cmd *domain.ExecCommand, streams domain.Streams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = append(m.Commands, cmd)
	m.Streams = append(m.Streams, streams)
	return m.Errors[cmd.Step]
}

// MockConfigLoader is a test double for domain.ConfigLoader.
// Fields are ordered to minimize memory padding.
type MockConfigLoader struct {
	Config     *domain.Config
	LoadErr    error
	LastOpts   domain.LoadConfigOptions
	LoadCount  int
	LoadCalled bool
}

// NewMockConfigLoader returns a loader that yields the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Ensure MockConfigLoader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the configured config and records opts.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LoadCalled = true
	m.LoadCount++
	m.LastOpts = opts
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr     error
	InitConfig  *domain.Config
	GlobalInfo  domain.ConfigInfo
	ProjectInfo domain.ConfigInfo
	InitGlobal  bool
	InitProject bool
}

// Ensure MockConfigManager implements domain.ConfigManager.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// GetProjectConfigInfo returns the configured project info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectInfo
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobal = true
	m.InitConfig = cfg
	return m.InitErr
}

// InitProjectConfig records the call.
func (m *MockConfigManager) InitProjectConfig(cfg *domain.Config) error {
	m.InitProject = true
	m.InitConfig = cfg
	return m.InitErr
}

// MockLogger is a test double for domain.Logger that keeps every entry.
type MockLogger struct {
	Entries []string
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, fmt.Sprintf("%s [%s] %s", level, category, msg))
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }
