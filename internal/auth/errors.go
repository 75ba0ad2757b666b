package auth

import "errors"

var (
	// ErrHashingUnavailable means the salt source or hash primitive failed; no
	// unsalted fallback exists.
	ErrHashingUnavailable = errors.New("password hashing unavailable")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")

	ErrInvalidSignature = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
	ErrMalformed        = errors.New("token malformed")
)
