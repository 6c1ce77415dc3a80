package usecase

import (
	"context"
	"testing"

	"github.com/commonspace/commonspace/internal/domain"
	"github.com/commonspace/commonspace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{
		GlobalInfo:  domain.ConfigInfo{Path: "/home/u/.config/commonspace/config.toml"},
		ProjectInfo: domain.ConfigInfo{Path: "/work/.commonspace.toml", Content: "[engine]", Exists: true},
	}
	loader := testutil.NewMockConfigLoader()

	uc := NewShowConfig(manager, loader)
	out, err := uc.Execute(context.Background(), ShowConfigInput{IgnoreGlobal: true})

	require.NoError(t, err)
	assert.Equal(t, manager.GlobalInfo, out.GlobalConfig)
	assert.Equal(t, manager.ProjectInfo, out.ProjectConfig)
	assert.Same(t, loader.Config, out.EffectiveConfig)
	assert.True(t, loader.LastOpts.IgnoreGlobal)
	assert.False(t, loader.LastOpts.IgnoreProject)
}

func TestShowConfig_Execute_LoadError(t *testing.T) {
	loader := testutil.NewMockConfigLoader()
	loader.LoadErr = assert.AnError

	uc := NewShowConfig(&testutil.MockConfigManager{}, loader)
	_, err := uc.Execute(context.Background(), ShowConfigInput{})

	assert.ErrorIs(t, err, assert.AnError)
}
