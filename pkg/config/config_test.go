package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHEFNEXT_BASE_URL", "")
	t.Setenv("CHEFNEXT_HTTP_TIMEOUT_SECONDS", "")

	cfg := Load()
	assert.Equal(t, transport.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30, cfg.HTTPTimeoutSeconds)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHEFNEXT_BASE_URL", "https://api.chefnext.dev")
	t.Setenv("CHEFNEXT_HTTP_TIMEOUT_SECONDS", "5")

	cfg := Load()
	assert.Equal(t, "https://api.chefnext.dev", cfg.BaseURL)
	assert.Equal(t, 5, cfg.HTTPTimeoutSeconds)
}

func TestLoadIgnoresBadTimeout(t *testing.T) {
	t.Setenv("CHEFNEXT_HTTP_TIMEOUT_SECONDS", "soon")

	cfg := Load()
	assert.Equal(t, 30, cfg.HTTPTimeoutSeconds)
}
