// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lysande2902/Numeros/internal/service"
	"github.com/Lysande2902/Numeros/internal/utils"
	"github.com/Lysande2902/Numeros/models"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantToken  string
		wantErr    error
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer abc.def.ghi",
			wantToken:  "abc.def.ghi",
		},
		{
			name:       "scheme only without token",
			authHeader: "Bearer",
			wantErr:    ErrInvalidAuthorizationHeader,
		},
		{
			name:       "scheme with empty token",
			authHeader: "Bearer ",
			wantErr:    ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.authHeader)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

// TestAuth_ValidToken verifies that a request carrying a valid bearer token
// reaches the downstream handler with the username stashed in the context.
func TestAuth_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{Username: "admin"}, nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)

	var gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := utils.GetUsernameFromContext(r.Context())
		require.True(t, ok)
		gotUsername = username
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/numero", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", gotUsername)
}

// TestAuth_Rejections verifies every 401 branch of the middleware: absent
// header, malformed header, expired token, and otherwise invalid token.
func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		parseErr    error
		wantMessage string
	}{
		{
			name:        "missing header",
			wantMessage: ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:        "header without token",
			authHeader:  "Bearer",
			wantMessage: ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:        "empty token",
			authHeader:  "Bearer ",
			wantMessage: ErrEmptyToken.Error(),
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired.jwt.token",
			parseErr:    service.ErrTokenIsExpired,
			wantMessage: service.ErrTokenIsExpired.Error(),
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer garbage",
			parseErr:    service.ErrTokenIsExpiredOrInvalid,
			wantMessage: service.ErrTokenIsExpiredOrInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					return models.Token{}, tt.parseErr
				},
			}

			h := newTestHandler(t, auth, nil, nil)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("downstream handler must not be reached")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/numero", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeErrorResponse(t, rec).Message)
		})
	}
}
