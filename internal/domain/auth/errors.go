package auth

import "errors"

var (
	ErrUserNotFound        = errors.New("User not found")
	ErrInvalidLoginCode    = errors.New("Invalid login code")
	ErrLoginCodeExpired    = errors.New("Login code expired")
	ErrLoginCodeConsumed   = errors.New("Login code already used")
	ErrInvalidRefreshToken = errors.New("Invalid refresh token")
	ErrTokenRevoked        = errors.New("Token has been revoked")
)
