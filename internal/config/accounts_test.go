package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStore_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SUDO_USER", "")

	store, err := LoadAccountStore()
	require.NoError(t, err)
	assert.Empty(t, store.Accounts)

	_, err = store.ActiveAccount()
	assert.Error(t, err)

	store.Accounts["u-1"] = Account{
		UserID:       "u-1",
		Host:         "https://cms.example.com",
		Email:        "admin@example.com",
		SessionToken: "secret",
		NetworkID:    1,
	}
	store.ActiveUserID = "u-1"
	require.NoError(t, store.Save())

	reloaded, err := LoadAccountStore()
	require.NoError(t, err)

	active, err := reloaded.ActiveAccount()
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", active.Email)
	assert.Equal(t, "https://cms.example.com", active.Host)
	assert.Equal(t, int64(1), active.NetworkID)
}

func TestAccountStore_RemoveAccount(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SUDO_USER", "")

	store, err := LoadAccountStore()
	require.NoError(t, err)

	store.Accounts["u-1"] = Account{UserID: "u-1", Email: "a@example.com"}
	store.ActiveUserID = "u-1"

	store.RemoveAccount("u-1")
	assert.Empty(t, store.ActiveUserID)
	_, err = store.ActiveAccount()
	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SUDO_USER", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.DisableUpdateCheck)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{LogLevel: "verbose"}
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "debug"
	assert.NoError(t, cfg.Validate())
}
