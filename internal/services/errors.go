package services

import (
	"errors"

	"github.com/baharkarakas/storefront-backend/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrDuplicateEmail     = repository.ErrDuplicateEmail
	ErrNotFound           = repository.ErrNotFound
)

// MinPasswordLen is counted in characters, not bytes.
const MinPasswordLen = 6
