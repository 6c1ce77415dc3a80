package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/commonspace/commonspace/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager inspects and creates the global and project config files.
type Manager struct {
	projectDir    string // Directory holding .commonspace.toml
	globalConfDir string // e.g. ~/.config/commonspace; empty when no home directory is known
}

// NewManager creates a Manager for the project in projectDir.
func NewManager(projectDir string) *Manager {
	return NewManagerWithGlobalDir(projectDir, defaultGlobalConfigDir())
}

// NewManagerWithGlobalDir creates a Manager with a custom global config directory.
func NewManagerWithGlobalDir(projectDir, globalConfDir string) *Manager {
	return &Manager{projectDir: projectDir, globalConfDir: globalConfDir}
}

func (m *Manager) globalPath() string {
	if m.globalConfDir == "" {
		return ""
	}
	return filepath.Join(m.globalConfDir, domain.ConfigFileName)
}

// GetProjectConfigInfo describes .commonspace.toml in the project directory.
func (m *Manager) GetProjectConfigInfo() domain.ConfigInfo {
	return readConfigInfo(domain.ProjectConfigPath(m.projectDir))
}

// GetGlobalConfigInfo describes the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	path := m.globalPath()
	if path == "" {
		return domain.ConfigInfo{}
	}
	return readConfigInfo(path)
}

func readConfigInfo(path string) domain.ConfigInfo {
	info := domain.ConfigInfo{Path: path}
	if content, err := os.ReadFile(path); err == nil {
		info.Content = string(content)
		info.Exists = true
	}
	return info
}

// InitProjectConfig writes the config template for cfg to .commonspace.toml.
func (m *Manager) InitProjectConfig(cfg *domain.Config) error {
	return writeNewConfig(domain.ProjectConfigPath(m.projectDir), cfg)
}

// InitGlobalConfig writes the config template for cfg to the global config
// file, creating its directory as needed.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	path := m.globalPath()
	if path == "" {
		return errors.New("global config directory not available")
	}
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", m.globalConfDir, err)
	}
	return writeNewConfig(path, cfg)
}

// writeNewConfig creates path exclusively; an existing file is never touched.
func writeNewConfig(path string, cfg *domain.Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}
	if err != nil {
		return err
	}
	if _, err := f.WriteString(domain.RenderConfigTemplate(cfg)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
