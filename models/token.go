package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every issued JWT.
//
// It extends the registered claims (iss, aud, exp, jti, iat) with the
// authenticated principal's name and role.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Name is the authenticated username, set from the credentials
	// presented at login.
	Name string `json:"name"`

	// Role is the access role granted to the principal. The service
	// recognises a single role, "User".
	Role string `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// Username is a cached copy of the "name" claim populated during token
// construction or after successful validation.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims holds the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Username is the principal identifier extracted from the "name"
	// claim. It is an internal server-side cache.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
