package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdenMGB/devtoolbox/internal/provider"
)

func TestLoad_FromFile(t *testing.T) {
	content := `
server:
  address: "127.0.0.1:9090"
  timeout: 10s
provider:
  type: github
  token: secret
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout)
	assert.Equal(t, provider.GitHub, cfg.Provider.Type)
	assert.Equal(t, "secret", cfg.Provider.Token)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:7070")
	t.Setenv("PROVIDER_TYPE", "gitlab")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:7070", cfg.Server.Address)
	assert.Equal(t, provider.GitLab, cfg.Provider.Type)
}
