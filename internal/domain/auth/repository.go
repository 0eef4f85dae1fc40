package auth

import "context"

// UserRepository - interface for users table
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

// LoginCodeRepository - interface for login_codes table
type LoginCodeRepository interface {
	Create(ctx context.Context, code LoginCode) (LoginCode, error)
	GetLatestByUserID(ctx context.Context, userID int64) (LoginCode, error)
	MarkConsumed(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}
