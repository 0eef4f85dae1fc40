package auth

import "context"

type Service interface {
	// RequestCode bootstraps the account on first login, stores a hashed
	// single-use code and emails the plaintext to the user.
	RequestCode(ctx context.Context, req RequestCodeRequest) error

	// VerifyCode consumes a valid code and issues an access/refresh token pair.
	VerifyCode(ctx context.Context, req VerifyCodeRequest) (TokenResponse, error)

	// Refresh rotates the token pair from a valid refresh token.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
