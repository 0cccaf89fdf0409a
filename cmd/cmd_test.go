package cmd

import (
	"testing"

	"theme-sync/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseID(t *testing.T) {
	id, err := parseID("1174", "themeId")
	require.NoError(t, err)
	assert.Equal(t, 1174, id)

	for _, arg := range []string{"0", "-4", "abc", "1.5"} {
		_, err := parseID(arg, "themeId")
		assert.Error(t, err, arg)
	}
}

func TestNewComponents(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	comps := newComponents(cfg, zap.NewNop())
	assert.NotNil(t, comps.tokens)
	assert.NotNil(t, comps.plm)
	assert.NotNil(t, comps.idm)
	assert.NotNil(t, comps.mapper)
	assert.False(t, comps.tokens.Info().HasToken)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "sync", "token", "attributes"} {
		assert.True(t, names[want], want)
	}
}
