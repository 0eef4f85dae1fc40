package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/client"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

const clientColumns = `
	id, account_id, name, slug, contact_name, contact_email, contact_phone,
	address, created_at, updated_at
`

func scanClient(row pgx.Row) (client.ClientProfile, error) {
	var c client.ClientProfile
	err := row.Scan(
		&c.ID, &c.AccountID, &c.Name, &c.Slug, &c.ContactName,
		&c.ContactEmail, &c.ContactPhone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *clientRepositoryImpl) Create(ctx context.Context, c client.ClientProfile) (client.ClientProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO client_profiles (account_id, name, slug, contact_name, contact_email, contact_phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + clientColumns

	created, err := scanClient(q.QueryRow(ctx, query,
		c.AccountID, c.Name, c.Slug, c.ContactName, c.ContactEmail, c.ContactPhone, c.Address,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return client.ClientProfile{}, client.ErrSlugTaken
		}
		return client.ClientProfile{}, err
	}

	return created, nil
}

func (r *clientRepositoryImpl) GetByID(ctx context.Context, id, accountID int64) (client.ClientProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM client_profiles WHERE id = $1 AND account_id = $2`

	c, err := scanClient(q.QueryRow(ctx, query, id, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ClientProfile{}, client.ErrClientNotFound
		}
		return client.ClientProfile{}, err
	}

	return c, nil
}

func (r *clientRepositoryImpl) ListByAccount(ctx context.Context, accountID int64) ([]client.ClientProfile, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+clientColumns+` FROM client_profiles WHERE account_id = $1 ORDER BY name`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []client.ClientProfile
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *clientRepositoryImpl) Update(ctx context.Context, c client.ClientProfile) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE client_profiles
		SET name = $1, slug = $2, contact_name = $3, contact_email = $4,
			contact_phone = $5, address = $6, updated_at = NOW()
		WHERE id = $7 AND account_id = $8
	`

	tag, err := q.Exec(ctx, query,
		c.Name, c.Slug, c.ContactName, c.ContactEmail, c.ContactPhone, c.Address,
		c.ID, c.AccountID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return client.ErrSlugTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

func (r *clientRepositoryImpl) Delete(ctx context.Context, id, accountID int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM client_profiles WHERE id = $1 AND account_id = $2`, id, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}
