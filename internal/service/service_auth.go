package service

import (
	"context"
	"errors"
	"time"

	"github.com/Lysande2902/Numeros/internal/config"
	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/utils"
	"github.com/Lysande2902/Numeros/models"
	"github.com/golang-jwt/jwt/v5"
)

// RoleUser is the single access role the service grants. Every
// authenticated identity carries it and all of them have equal access.
const RoleUser = "User"

// fixedCredentialVerifier matches credentials against one configured pair.
// This is a deliberate simplification of the system: no hashing, no rate
// limiting, no user registry.
type fixedCredentialVerifier struct {
	username string
	password string
}

// NewFixedCredentialVerifier constructs a [CredentialVerifier] recognising
// exactly the credential pair from cfg.
func NewFixedCredentialVerifier(cfg config.Auth) CredentialVerifier {
	return &fixedCredentialVerifier{
		username: cfg.Username,
		password: cfg.Password,
	}
}

func (v *fixedCredentialVerifier) Verify(username, password string) bool {
	return username == v.username && password == v.password
}

// authService is the concrete implementation of AuthService.
// It handles credential verification and the JWT token lifecycle. Tokens are
// stateless: nothing is stored server-side and there is no revocation.
type authService struct {
	// credentials decides whether a presented pair identifies the
	// recognised principal.
	credentials CredentialVerifier

	// jti produces the unique token identifier embedded in each token.
	jti *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenAudience is the "aud" claim embedded in every issued JWT and
	// validated during parsing.
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService using the given credential
// verifier and the token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(credentials CredentialVerifier, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		credentials:   credentials,
		jti:           utils.NewUUIDGenerator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: cfg.TokenAudience,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates the presented credential pair and issues a signed
// token.
//
// Empty username or password fails fast with ErrMissingCredentials before
// any comparison. A mismatching pair yields ErrInvalidCredentials without
// revealing which half was wrong.
//
// On success the token carries the claims {name, role="User", jti, iss,
// aud} and expires tokenDuration after issuance.
func (a *authService) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Msg("missing username or password")
		return models.LoginResponse{}, ErrMissingCredentials
	}

	if !a.credentials.Verify(username, password) {
		log.Error().Str("username", username).Msg("credential verification failed")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.tokenAudience, username, RoleUser, a.jti.Generate(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("token generation failed")
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		Token:     token.SignedString,
		Username:  username,
		ExpiresAt: token.Claims.ExpiresAt.Time,
	}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// issuer, audience, and expiry. Expiry is surfaced as ErrTokenIsExpired;
// every other validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
