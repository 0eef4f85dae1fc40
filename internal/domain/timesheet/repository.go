package timesheet

import (
	"context"
	"time"
)

// TimeEntryRepository - interface for time_entries table
type TimeEntryRepository interface {
	// Upsert writes by natural key (project_id, worker_id, date).
	Upsert(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	ListByProjectPeriod(ctx context.Context, projectID int64, from, to time.Time) ([]TimeEntry, error)
	ListByAccountPeriod(ctx context.Context, accountID int64, from, to time.Time) ([]TimeEntry, error)

	// DeleteByProjectWorker removes one worker's entries for one project,
	// used when the worker is unassigned.
	DeleteByProjectWorker(ctx context.Context, projectID, workerID int64) (int64, error)
}
