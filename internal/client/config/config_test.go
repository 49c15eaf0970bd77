package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000/api/v1", c.APIBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "hisabkitab.db", c.CredentialDBPath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsWithoutSources(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
