// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/Lysande2902/Numeros/internal/config"
	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "auth-test-key",
		TokenIssuer:   "auth-test-issuer",
		TokenAudience: "auth-test-audience",
		TokenDuration: 24 * time.Hour,
		Username:      "admin",
		Password:      "123456",
	}
}

func newTestAuthService() AuthService {
	cfg := testAuthConfig()
	return NewAuthService(NewFixedCredentialVerifier(cfg), cfg, logger.Nop())
}

// TestLogin_Success verifies a successful login issues a token that the same
// service accepts, with an expiry 24 hours out.
func TestLogin_Success(t *testing.T) {
	svc := newTestAuthService()
	before := time.Now()

	resp, err := svc.Login(context.Background(), "admin", "123456")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Username)
	assert.WithinDuration(t, before.Add(24*time.Hour), resp.ExpiresAt, 2*time.Second)

	token, err := svc.ParseToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", token.Username)
	assert.Equal(t, RoleUser, token.Claims.Role)
	assert.NotEmpty(t, token.Claims.ID)
	assert.Equal(t, "auth-test-issuer", token.Claims.Issuer)
}

// TestLogin_MissingCredentials verifies the fail-fast check runs before any
// comparison.
func TestLogin_MissingCredentials(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), "", "123456")
	require.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(context.Background(), "admin", "")
	require.ErrorIs(t, err, ErrMissingCredentials)
}

// TestLogin_InvalidCredentials verifies that any mismatching pair is
// rejected with the same uniform error.
func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newTestAuthService()

	cases := [][2]string{
		{"admin", "wrong"},
		{"nobody", "123456"},
		{"nobody", "wrong"},
	}

	for _, c := range cases {
		_, err := svc.Login(context.Background(), c[0], c[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials, "credentials %q/%q", c[0], c[1])
	}
}

// TestParseToken_Expired verifies an expired token is reported distinctly
// even when signature, issuer, and audience are valid.
func TestParseToken_Expired(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewAuthService(NewFixedCredentialVerifier(cfg), cfg, logger.Nop())

	expired, err := utils.GenerateJWTToken(cfg.TokenIssuer, cfg.TokenAudience, "admin", RoleUser, "jti", -time.Minute, cfg.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), expired.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpired)
}

// TestParseToken_WrongKey verifies tokens signed with a different key are
// rejected with the normalised error.
func TestParseToken_WrongKey(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewAuthService(NewFixedCredentialVerifier(cfg), cfg, logger.Nop())

	forged, err := utils.GenerateJWTToken(cfg.TokenIssuer, cfg.TokenAudience, "admin", RoleUser, "jti", time.Hour, "another-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), forged.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// TestParseToken_WrongIssuerOrAudience verifies the issuer and audience
// claim checks gate acceptance.
func TestParseToken_WrongIssuerOrAudience(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewAuthService(NewFixedCredentialVerifier(cfg), cfg, logger.Nop())

	badIssuer, err := utils.GenerateJWTToken("other-issuer", cfg.TokenAudience, "admin", RoleUser, "jti", time.Hour, cfg.TokenSignKey)
	require.NoError(t, err)
	_, err = svc.ParseToken(context.Background(), badIssuer.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	badAudience, err := utils.GenerateJWTToken(cfg.TokenIssuer, "other-audience", "admin", RoleUser, "jti", time.Hour, cfg.TokenSignKey)
	require.NoError(t, err)
	_, err = svc.ParseToken(context.Background(), badAudience.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
