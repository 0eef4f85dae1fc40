package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `
	id, account_id, name, client_name, billing_rate, default_hours,
	archived, created_at, updated_at
`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.AccountID, &p.Name, &p.ClientName, &p.BillingRate,
		&p.DefaultHours, &p.Archived, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (account_id, name, client_name, billing_rate, default_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + projectColumns

	created, err := scanProject(q.QueryRow(ctx, query,
		p.AccountID, p.Name, p.ClientName, p.BillingRate, p.DefaultHours,
	))
	if err != nil {
		return project.Project{}, err
	}

	return created, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id, accountID int64) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND account_id = $2`

	p, err := scanProject(q.QueryRow(ctx, query, id, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) ListByAccount(ctx context.Context, accountID int64, filter project.ProjectListFilter) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE account_id = $1`
	args := []interface{}{accountID}

	if !filter.IncludeArchived {
		query += ` AND archived = FALSE`
	}
	if filter.Search != "" {
		query += ` AND (name ILIKE $2 OR client_name ILIKE $2)`
		args = append(args, "%"+filter.Search+"%")
	}

	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $1, client_name = $2, billing_rate = $3, default_hours = $4,
			archived = $5, updated_at = NOW()
		WHERE id = $6 AND account_id = $7
	`

	tag, err := q.Exec(ctx, query,
		p.Name, p.ClientName, p.BillingRate, p.DefaultHours, p.Archived,
		p.ID, p.AccountID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id, accountID int64) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM time_entries WHERE project_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM project_workers WHERE project_id = $1`, id); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND account_id = $2`, id, accountID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return project.ErrProjectNotFound
		}
		return nil
	})
}
