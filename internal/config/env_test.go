// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_PopulatesFields verifies that env variables with the expected
// prefixes land in the right struct fields.
func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9090")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/parity")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_AUDIENCE", "env-audience")
	t.Setenv("AUTH_TOKEN_DURATION", "12h")
	t.Setenv("APP_ENVIRONMENT", "staging")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost:5432/parity", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, "env-audience", cfg.Auth.TokenAudience)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "staging", cfg.App.Environment)
}

// TestBuild_DefaultsFillUnsetFields verifies that the defaults layer only
// fills fields no explicit source provided.
func TestBuild_DefaultsFillUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth:    Auth{TokenIssuer: "explicit-issuer"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "explicit-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultTokenAudience, cfg.Auth.TokenAudience)
	assert.Equal(t, DefaultTokenSignKey, cfg.Auth.TokenSignKey)
	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultUsername, cfg.Auth.Username)
	assert.Equal(t, DefaultPassword, cfg.Auth.Password)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// TestBuild_MissingDSNFailsValidation verifies that a config without a
// database DSN is rejected.
func TestBuild_MissingDSNFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.withDefaults()

	_, err := b.build()
	require.ErrorIs(t, err, ErrMissingDatabaseDSN)
}

// TestNetAddress_SetAndString exercises the flag.Value implementation.
func TestNetAddress_SetAndString(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8081"))
	assert.Equal(t, "localhost:8081", a.String())

	require.Error(t, a.Set("no-port"))
	require.Error(t, a.Set("localhost:-1"))
}
