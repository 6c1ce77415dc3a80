package usecase

import (
	"context"
	"testing"

	"github.com/commonspace/commonspace/internal/domain"
	"github.com/commonspace/commonspace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("project config", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			ProjectInfo: domain.ConfigInfo{Path: "/work/.commonspace.toml"},
		}
		uc := NewInitConfig(manager)

		out, err := uc.Execute(context.Background(), InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/work/.commonspace.toml", out.Path)
		assert.True(t, manager.InitProject)
		assert.False(t, manager.InitGlobal)
		assert.Equal(t, domain.NewDefaultConfig(), manager.InitConfig)
	})

	t.Run("global config", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			GlobalInfo: domain.ConfigInfo{Path: "/home/u/.config/commonspace/config.toml"},
		}
		uc := NewInitConfig(manager)

		out, err := uc.Execute(context.Background(), InitConfigInput{Global: true})

		require.NoError(t, err)
		assert.Equal(t, "/home/u/.config/commonspace/config.toml", out.Path)
		assert.True(t, manager.InitGlobal)
	})

	t.Run("existing file", func(t *testing.T) {
		manager := &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}
		uc := NewInitConfig(manager)

		_, err := uc.Execute(context.Background(), InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
