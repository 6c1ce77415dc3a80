package usecase

import (
	"context"

	"github.com/commonspace/commonspace/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Global bool // Write the global config instead of .commonspace.toml
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig writes a commented config file holding the default engine settings.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{configManager: configManager}
}

// Execute creates the selected config file. It fails with
// domain.ErrConfigExists if the file is already present.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	info, write := uc.configManager.GetProjectConfigInfo(), uc.configManager.InitProjectConfig
	if in.Global {
		info, write = uc.configManager.GetGlobalConfigInfo(), uc.configManager.InitGlobalConfig
	}

	if err := write(domain.NewDefaultConfig()); err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: info.Path}, nil
}
