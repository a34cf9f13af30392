// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// requiredSecrets returns the fields that have no defaults.
func requiredSecrets() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: "sign-key",
			SecretKey:    "0123456789abcdef-secret",
		},
		Payment: Payment{SecretKey: "8gBm/:&EnhH.1/q"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/notes"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// source does not pass validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsFillGaps verifies that defaults populate every policy
// value that no other source set.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, requiredSecrets())

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Security.LockoutThreshold)
	assert.Equal(t, time.Hour, cfg.Security.LockoutCooloff)
	assert.Equal(t, 5, cfg.Security.PasswordHistoryCount)
	assert.Equal(t, 90, cfg.Security.PasswordExpiryDays)
	assert.Equal(t, 12, cfg.Security.PasswordMinLength)
	assert.Equal(t, "Secure Notes", cfg.Security.TOTPIssuer)
	assert.Equal(t, uint(1), cfg.Security.TOTPWindow)
	assert.Equal(t, "EPAYTEST", cfg.Payment.ProductCode)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, 90*24*time.Hour, cfg.Security.PasswordExpiry())
}

// TestBuild_EarlierSourceWins verifies that a value from an earlier source
// is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	first := requiredSecrets()
	first.Security.LockoutThreshold = 3

	b := newConfigBuilder()
	b.configs = append(b.configs, first)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Security.LockoutThreshold)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_InvalidFlagSetsError verifies that unknown flags are
// collected into the builder error.
func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown-flag"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSkips verifies that withJSON is a no-op when no source
// names a JSON file.
func TestWithJSON_NoPathSkips(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFile verifies that the file named by a previous source
// is parsed and appended.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"security": map[string]any{"lockout_threshold": 7, "lockout_cooloff": "15m"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, 7, b.configs[1].Security.LockoutThreshold)
	assert.Equal(t, 15*time.Minute, b.configs[1].Security.LockoutCooloff)
}

// TestWithJSON_MissingFile verifies that a missing file becomes a builder
// error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilder_EnvFlagsJSONDefaults verifies the precedence of the whole
// chain.
func TestBuilder_EnvFlagsJSONDefaults(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_issuer": "from-json", "secret_key": "json-secret-key-material"},
		"payment": map[string]any{"secret_key": "json-payment-key"},
	})

	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/notes")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", "localhost:9000", "-token-issuer", "from-flags", "-c", path}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "from-flags", cfg.App.TokenIssuer)
	assert.Equal(t, "json-secret-key-material", cfg.App.SecretKey)
	assert.Equal(t, "json-payment-key", cfg.Payment.SecretKey)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://env/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Hour, cfg.App.AccessTokenDuration)
}
