package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://mingle-ionapi.eu1.inforcloudsuite.com", cfg.ION.APIURL)
	assert.Equal(t, 30, cfg.ION.TimeoutSeconds)
	assert.Equal(t, "token.oauth2", cfg.Auth.TokenEndpoint)
	assert.Equal(t, "revoke_token.oauth2", cfg.Auth.RevokeEndpoint)
	assert.Empty(t, cfg.Auth.ClientSecret)
	assert.Equal(t, "FSH1", cfg.PLM.Schema)
	assert.Equal(t, 4, cfg.PLM.ThemeConcurrency)
	assert.Equal(t, 300, cfg.IDM.ValueListTTLSeconds)
	assert.Equal(t, "Theme_Attributes", cfg.IDM.ProbeEntity)
	assert.False(t, cfg.Schedule.Enabled())
	assert.False(t, cfg.Schedule.DryRun)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("AUTH_CLIENT_ID", "client-from-env")
	t.Setenv("ION_TENANT_ID", "TENANT_TST")
	t.Setenv("IDM_VALUE_LIST_TTL_SECONDS", "0")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "client-from-env", cfg.Auth.ClientID)
	assert.Equal(t, "TENANT_TST", cfg.ION.TenantID)
	assert.Equal(t, 0, cfg.IDM.ValueListTTLSeconds)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_PORT=9191\nPLM_SCHEMA=FSH2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("PLM_SCHEMA")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "FSH2", cfg.PLM.Schema)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := "plm:\n  schema: FSH3\n  theme_concurrency: 8\nion:\n  tenant_id: FROM_FILE\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Setenv("ION_TENANT_ID", "FROM_ENV")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "FSH3", cfg.PLM.Schema)
	assert.Equal(t, 8, cfg.PLM.ThemeConcurrency)
	assert.Equal(t, "FROM_ENV", cfg.ION.TenantID)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("plm: [unterminated"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
