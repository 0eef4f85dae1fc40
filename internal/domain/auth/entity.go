package auth

import "time"

// User is a person who can sign in. Every user owns exactly one account;
// the account is bootstrapped on first login.
type User struct {
	ID        int64
	AccountID int64
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoginCode is a single-use 8-digit email code. Only the bcrypt hash is
// stored; the plaintext goes out by email and is never persisted.
type LoginCode struct {
	ID         int64
	UserID     int64
	CodeHash   string
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

func (c LoginCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

func (c LoginCode) Consumed() bool {
	return c.ConsumedAt != nil
}
