package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid login ID or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
