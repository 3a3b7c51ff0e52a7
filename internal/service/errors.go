package service

import "errors"

var (
	// ErrMissingCredentials is returned when username or password is empty;
	// the check happens before any comparison.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrInvalidCredentials is returned on any credential mismatch. Callers
	// must not reveal whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNegativeNumber rejects parity-record input below zero.
	ErrNegativeNumber = errors.New("negative numbers are not allowed")
	// ErrIDMismatch is returned when the id in the request path differs
	// from the id in the request body.
	ErrIDMismatch = errors.New("path id does not match body id")

	// Palindrome text validation errors, checked in this order; the first
	// failing check wins.
	ErrEmptyText      = errors.New("text is required")
	ErrMultipleWords  = errors.New("only a single word is allowed")
	ErrNotOnlyLetters = errors.New("only letters are allowed (no digits or symbols)")
)
