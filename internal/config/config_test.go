package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.test/api/")
	t.Setenv("TXSTORE_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.test/api", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.StatusPollInterval)
	assert.Equal(t, 60, cfg.StatusPollMaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.PendingPollInterval)
	assert.Equal(t, "sql", cfg.TxStoreDriver)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("STATUS_POLL_INTERVAL", "soon")
	t.Setenv("STATUS_POLL_MAX_ATTEMPTS", "-4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.StatusPollInterval)
	assert.Equal(t, 60, cfg.StatusPollMaxAttempts)
}

func TestLoadRejectsUnknownStoreDriver(t *testing.T) {
	t.Setenv("TXSTORE_DRIVER", "cookie")

	_, err := Load()
	assert.Error(t, err)
}

func TestSnapScriptURL(t *testing.T) {
	cfg := &Config{}
	assert.Contains(t, cfg.SnapScriptURL(), "sandbox")

	cfg.MidtransProduction = true
	assert.Equal(t, "https://app.midtrans.com/snap/snap.js", cfg.SnapScriptURL())
}
