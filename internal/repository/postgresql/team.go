package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chronnix/chronnix-backend-go/internal/domain/team"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
)

type teamRepositoryImpl struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepositoryImpl{db: db}
}

func (r *teamRepositoryImpl) Create(ctx context.Context, t team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teams (account_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id, account_id, name, color, created_at, updated_at
	`

	var created team.Team
	err := q.QueryRow(ctx, query, t.AccountID, t.Name, t.Color).
		Scan(&created.ID, &created.AccountID, &created.Name, &created.Color, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return team.Team{}, team.ErrNameTaken
		}
		return team.Team{}, err
	}

	return created, nil
}

func (r *teamRepositoryImpl) GetByID(ctx context.Context, id, accountID int64) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, name, color, created_at, updated_at
		FROM teams
		WHERE id = $1 AND account_id = $2
	`

	var t team.Team
	err := q.QueryRow(ctx, query, id, accountID).
		Scan(&t.ID, &t.AccountID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, err
	}

	if err := r.loadMembers(ctx, []*team.Team{&t}); err != nil {
		return team.Team{}, err
	}

	return t, nil
}

func (r *teamRepositoryImpl) ListByAccount(ctx context.Context, accountID int64) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, account_id, name, color, created_at, updated_at
		FROM teams
		WHERE account_id = $1
		ORDER BY name
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		var t team.Team
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*team.Team, len(teams))
	for i := range teams {
		refs[i] = &teams[i]
	}
	if err := r.loadMembers(ctx, refs); err != nil {
		return nil, err
	}

	return teams, nil
}

func (r *teamRepositoryImpl) Update(ctx context.Context, t team.Team) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE teams SET name = $1, color = $2, updated_at = NOW()
		WHERE id = $3 AND account_id = $4
	`, t.Name, t.Color, t.ID, t.AccountID)
	if err != nil {
		if isUniqueViolation(err) {
			return team.ErrNameTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return team.ErrTeamNotFound
	}

	return nil
}

func (r *teamRepositoryImpl) Delete(ctx context.Context, id, accountID int64) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, id); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM teams WHERE id = $1 AND account_id = $2`, id, accountID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return team.ErrTeamNotFound
		}
		return nil
	})
}

func (r *teamRepositoryImpl) AddMember(ctx context.Context, teamID, workerID int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO team_members (team_id, worker_id)
		VALUES ($1, $2)
		ON CONFLICT (team_id, worker_id) DO NOTHING
	`, teamID, workerID)
	return err
}

func (r *teamRepositoryImpl) RemoveMember(ctx context.Context, teamID, workerID int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		DELETE FROM team_members WHERE team_id = $1 AND worker_id = $2
	`, teamID, workerID)
	return err
}

func (r *teamRepositoryImpl) loadMembers(ctx context.Context, teams []*team.Team) error {
	if len(teams) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	ids := make([]int64, 0, len(teams))
	byID := make(map[int64]*team.Team, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
		byID[t.ID] = t
	}

	rows, err := q.Query(ctx, `
		SELECT team_id, worker_id FROM team_members WHERE team_id = ANY($1)
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var teamID, workerID int64
		if err := rows.Scan(&teamID, &workerID); err != nil {
			return err
		}
		if t, ok := byID[teamID]; ok {
			t.MemberIDs = append(t.MemberIDs, workerID)
		}
	}

	return rows.Err()
}

// isUniqueViolation reports a Postgres 23505 unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
