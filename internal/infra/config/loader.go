// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/commonspace/commonspace/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .commonspace.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/commonspace)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (defaults <- global <- project).
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if !opts.IgnoreGlobal {
		global, err := l.loadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	if !opts.IgnoreProject {
		project, err := l.loadProject()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if project != nil {
			base = mergeConfigs(base, project)
		}
	}

	return base, nil
}

// GlobalConfigPath returns the global config file path, or "" when unknown.
func (l *Loader) GlobalConfigPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

func (l *Loader) loadGlobal() (*partialConfig, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

func (l *Loader) loadProject() (*partialConfig, error) {
	if l.projectDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.ProjectConfigPath(l.projectDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*partialConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := convertRawToDomainConfig(raw)
	cfg.Engine.Dir = expandHome(cfg.Engine.Dir)
	cfg.Log.Dir = expandHome(cfg.Log.Dir)
	return cfg, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// partialConfig marks which engine list fields were set explicitly, so that
// an explicit empty list can override a non-empty default.
type partialConfig struct {
	*domain.Config
	runnerSet  bool
	buildSet   bool
	runTaskSet bool
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *partialConfig {
	res := &partialConfig{Config: &domain.Config{}}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "engine":
			for k, v := range m {
				switch k {
				case "runner":
					if list, ok := stringList(v); ok {
						res.Engine.Runner = list
						res.runnerSet = true
					} else {
						warnings = append(warnings, "invalid value in [engine]: runner must be an array of strings")
					}
				case "build":
					if list, ok := stringList(v); ok {
						res.Engine.Build = list
						res.buildSet = true
					} else {
						warnings = append(warnings, "invalid value in [engine]: build must be an array of strings")
					}
				case "run_task":
					if s, ok := v.(string); ok {
						res.Engine.RunTask = s
						res.runTaskSet = true
					}
				case "dir":
					if s, ok := v.(string); ok {
						res.Engine.Dir = s
					}
				case "java":
					if s, ok := v.(string); ok {
						res.Engine.Java = s
					}
				case "heap":
					if s, ok := v.(string); ok {
						res.Engine.Heap = s
					}
				case "artifact":
					if s, ok := v.(string); ok {
						res.Engine.Artifact = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [engine]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				case "dir":
					if s, ok := v.(string); ok {
						res.Log.Dir = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func stringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base *domain.Config, override *partialConfig) *domain.Config {
	result := &domain.Config{
		Engine:   base.Engine,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Engine.Runner = slices.Clone(base.Engine.Runner)
	result.Engine.Build = slices.Clone(base.Engine.Build)

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.runnerSet {
		result.Engine.Runner = slices.Clone(override.Engine.Runner)
	}
	if override.buildSet {
		result.Engine.Build = slices.Clone(override.Engine.Build)
	}
	if override.runTaskSet {
		result.Engine.RunTask = override.Engine.RunTask
	}
	if override.Engine.Dir != "" {
		result.Engine.Dir = override.Engine.Dir
	}
	if override.Engine.Java != "" {
		result.Engine.Java = override.Engine.Java
	}
	if override.Engine.Heap != "" {
		result.Engine.Heap = override.Engine.Heap
	}
	if override.Engine.Artifact != "" {
		result.Engine.Artifact = override.Engine.Artifact
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.Dir != "" {
		result.Log.Dir = override.Log.Dir
	}

	return result
}
