package models

import "time"

// LoginRequest is the credential pair presented to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	// Token is the signed bearer token to present on protected routes.
	Token string `json:"token"`

	// Username echoes the authenticated principal.
	Username string `json:"username"`

	// ExpiresAt is the instant after which the token is rejected.
	ExpiresAt time.Time `json:"expiresAt"`
}

// ErrorResponse is the JSON body of every 4xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HostInfo is the unauthenticated diagnostic payload of the host-info
// endpoint.
type HostInfo struct {
	Host        string    `json:"host"`
	Scheme      string    `json:"scheme"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}
