package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/auth"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(ctx context.Context, user auth.User) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (account_id, email)
		VALUES ($1, $2)
		RETURNING id, account_id, email, created_at, updated_at
	`

	var created auth.User
	err := q.QueryRow(ctx, query, user.AccountID, user.Email).
		Scan(&created.ID, &created.AccountID, &created.Email, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return auth.User{}, err
	}

	return created, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, email, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user auth.User
	err := q.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.AccountID, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, err
	}

	return user, nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, email, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user auth.User
	err := q.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.AccountID, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, err
	}

	return user, nil
}

type loginCodeRepositoryImpl struct {
	db *database.DB
}

func NewLoginCodeRepository(db *database.DB) auth.LoginCodeRepository {
	return &loginCodeRepositoryImpl{db: db}
}

func (r *loginCodeRepositoryImpl) Create(ctx context.Context, code auth.LoginCode) (auth.LoginCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO login_codes (user_id, code_hash, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, code_hash, expires_at, consumed_at, created_at
	`

	var created auth.LoginCode
	err := q.QueryRow(ctx, query, code.UserID, code.CodeHash, code.ExpiresAt).
		Scan(&created.ID, &created.UserID, &created.CodeHash, &created.ExpiresAt, &created.ConsumedAt, &created.CreatedAt)
	if err != nil {
		return auth.LoginCode{}, err
	}

	return created, nil
}

func (r *loginCodeRepositoryImpl) GetLatestByUserID(ctx context.Context, userID int64) (auth.LoginCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, code_hash, expires_at, consumed_at, created_at
		FROM login_codes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var code auth.LoginCode
	err := q.QueryRow(ctx, query, userID).
		Scan(&code.ID, &code.UserID, &code.CodeHash, &code.ExpiresAt, &code.ConsumedAt, &code.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.LoginCode{}, auth.ErrInvalidLoginCode
		}
		return auth.LoginCode{}, err
	}

	return code, nil
}

func (r *loginCodeRepositoryImpl) MarkConsumed(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE login_codes SET consumed_at = NOW() WHERE id = $1 AND consumed_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrLoginCodeConsumed
	}

	return nil
}

func (r *loginCodeRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM login_codes WHERE expires_at < NOW() - INTERVAL '1 day'`)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
