package auth

import "errors"

var (
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidToken  = errors.New("invalid session token")
	ErrNoSecret      = errors.New("JWT secret not configured")
)
