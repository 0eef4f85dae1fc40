package assignment

import "context"

// AssignmentRepository - interface for project_workers table
type AssignmentRepository interface {
	// Upsert is idempotent on (project_id, worker_id).
	Upsert(ctx context.Context, a Assignment) error
	Delete(ctx context.Context, projectID, workerID int64) error
	ListWorkerIDsByProject(ctx context.Context, projectID int64) ([]int64, error)
	ListByAccount(ctx context.Context, accountID int64) ([]Assignment, error)
}
