package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

func (r *accountRepositoryImpl) Create(ctx context.Context, a account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (name, locale, timezone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, locale, timezone, address, created_at, updated_at
	`

	var created account.Account
	err := q.QueryRow(ctx, query, a.Name, a.Locale, a.Timezone, a.Address).
		Scan(&created.ID, &created.Name, &created.Locale, &created.Timezone, &created.Address, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return account.Account{}, err
	}

	return created, nil
}

func (r *accountRepositoryImpl) GetByID(ctx context.Context, id int64) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, locale, timezone, address, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var a account.Account
	err := q.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.Name, &a.Locale, &a.Timezone, &a.Address, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}

	return a, nil
}

func (r *accountRepositoryImpl) Update(ctx context.Context, a account.Account) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET name = $1, locale = $2, timezone = $3, address = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, a.Name, a.Locale, a.Timezone, a.Address, a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepositoryImpl) GetSettings(ctx context.Context, accountID int64) (account.CompanySettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT account_id, bce_number, verified, valid_until, logo_path, updated_at
		FROM company_settings
		WHERE account_id = $1
	`

	var s account.CompanySettings
	err := q.QueryRow(ctx, query, accountID).
		Scan(&s.AccountID, &s.BCENumber, &s.Verified, &s.ValidUntil, &s.LogoPath, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No row yet means unverified defaults, not an error.
			return account.CompanySettings{AccountID: accountID}, nil
		}
		return account.CompanySettings{}, err
	}

	return s, nil
}

func (r *accountRepositoryImpl) UpsertSettings(ctx context.Context, s account.CompanySettings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_settings (account_id, bce_number, verified, valid_until, logo_path, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (account_id) DO UPDATE SET
			bce_number = EXCLUDED.bce_number,
			verified = EXCLUDED.verified,
			valid_until = EXCLUDED.valid_until,
			logo_path = EXCLUDED.logo_path,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, s.AccountID, s.BCENumber, s.Verified, s.ValidUntil, s.LogoPath)
	return err
}
