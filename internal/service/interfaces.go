package service

import (
	"context"

	"github.com/Lysande2902/Numeros/models"
)

// CredentialVerifier decides whether a presented credential pair identifies
// the recognised principal. Kept as a capability so a future identity store
// can replace the fixed pair without touching the token-signing logic.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// AuthService is the token authority and verifier: it exchanges a valid
// credential pair for a signed bearer token and validates presented tokens
// on every protected request.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.LoginResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NumberService exposes the parity-record operations backed by the
// persisted collection.
type NumberService interface {
	List(ctx context.Context, page, pageSize int) (models.PaginatedResponse[models.Number], error)
	Get(ctx context.Context, id int64) (models.Number, error)
	Create(ctx context.Context, value int64) (models.Number, error)
	Update(ctx context.Context, pathID int64, number models.Number) error
	Delete(ctx context.Context, id int64) error
}

// PalindromeService exposes the palindrome-record operations backed by the
// in-memory collection.
type PalindromeService interface {
	List(ctx context.Context, page, pageSize int) (models.PaginatedResponse[models.Palindrome], error)
	Get(ctx context.Context, id int64) (models.Palindrome, error)
	Create(ctx context.Context, text string) (models.Palindrome, error)
	Update(ctx context.Context, id int64, text string) error
	Delete(ctx context.Context, id int64) error
}
