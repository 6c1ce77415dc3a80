package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config file names.
const (
	ConfigFileName        = "config.toml"
	ProjectConfigFileName = ".commonspace.toml"
	LogFileName           = "commonspace.log"
	AppDirName            = "commonspace"
)

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultRunTask  = "run"
	DefaultJava     = "java"
	DefaultHeap     = "10g"
	DefaultArtifact = "target/commonspace-assembly-0.1.0-SNAPSHOT.jar"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Engine   EngineConfig `toml:"engine"`
	Log      LogConfig    `toml:"log"`
}

// EngineConfig describes how the routing engine is reached from [engine].
type EngineConfig struct {
	Runner   []string `toml:"runner"`         // Runner prefix for generic commands (e.g. ["./sbt"])
	Build    []string `toml:"build"`          // Build step for buildgraph; empty skips it
	Dir      string   `toml:"dir,omitempty"`  // Working directory for engine processes
	RunTask  string   `toml:"run_task"`       // When set, operation and arguments are joined into one runner argument after this task name
	Java     string   `toml:"java"`           // JVM launcher used to run the packaged artifact
	Heap     string   `toml:"heap,omitempty"` // Maximum heap passed as -Xmx
	Artifact string   `toml:"artifact"`       // Packaged engine artifact produced by Build
}

// LogConfig holds settings from [log].
type LogConfig struct {
	Level string `toml:"level"`         // debug, info, warn or error
	Dir   string `toml:"dir,omitempty"` // Log directory; empty disables file logging
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// LoadConfigOptions selects which configuration sources are merged.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Runner:   []string{"./sbt"},
			RunTask:  DefaultRunTask,
			Build:    []string{"./sbt", "assembly"},
			Java:     DefaultJava,
			Heap:     DefaultHeap,
			Artifact: DefaultArtifact,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// GlobalConfigDir returns the global configuration directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ProjectConfigPath returns the project config path inside dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// LogFilePath returns the log file path inside the log directory.
func LogFilePath(logDir string) string {
	return filepath.Join(logDir, LogFileName)
}

// RenderConfigTemplate renders a commented config file from cfg's values.
func RenderConfigTemplate(cfg *Config) string {
	tmpl := template.Must(template.New("config").Funcs(template.FuncMap{
		"quote":     strconv.Quote,
		"quoteList": quoteList,
	}).Parse(configTemplateContent))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		// The template is embedded and only reads plain fields.
		panic(err)
	}
	return buf.String()
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
