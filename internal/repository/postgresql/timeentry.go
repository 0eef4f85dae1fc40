package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/timesheet"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timesheet.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

const timeEntryColumns = `
	id, account_id, project_id, worker_id, date, hours, status,
	note, start_time, end_time, created_at, updated_at
`

func scanTimeEntry(row pgx.Row) (timesheet.TimeEntry, error) {
	var e timesheet.TimeEntry
	err := row.Scan(
		&e.ID, &e.AccountID, &e.ProjectID, &e.WorkerID, &e.Date,
		&e.Hours, &e.Status, &e.Note, &e.StartTime, &e.EndTime,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *timeEntryRepositoryImpl) Upsert(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (account_id, project_id, worker_id, date, hours, status, note, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (project_id, worker_id, date) DO UPDATE SET
			hours = EXCLUDED.hours,
			status = EXCLUDED.status,
			note = EXCLUDED.note,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			updated_at = NOW()
		RETURNING ` + timeEntryColumns

	created, err := scanTimeEntry(q.QueryRow(ctx, query,
		entry.AccountID, entry.ProjectID, entry.WorkerID, entry.Date,
		entry.Hours, entry.Status, entry.Note, entry.StartTime, entry.EndTime,
	))
	if err != nil {
		return timesheet.TimeEntry{}, err
	}

	return created, nil
}

func (r *timeEntryRepositoryImpl) ListByProjectPeriod(ctx context.Context, projectID int64, from, to time.Time) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE project_id = $1 AND date >= $2 AND date <= $3
		ORDER BY worker_id, date
	`

	rows, err := q.Query(ctx, query, projectID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimeEntries(rows)
}

func (r *timeEntryRepositoryImpl) ListByAccountPeriod(ctx context.Context, accountID int64, from, to time.Time) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE account_id = $1 AND date >= $2 AND date <= $3
		ORDER BY project_id, worker_id, date
	`

	rows, err := q.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimeEntries(rows)
}

func (r *timeEntryRepositoryImpl) DeleteByProjectWorker(ctx context.Context, projectID, workerID int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM time_entries WHERE project_id = $1 AND worker_id = $2
	`, projectID, workerID)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func collectTimeEntries(rows pgx.Rows) ([]timesheet.TimeEntry, error) {
	var entries []timesheet.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
