package postgresql

import (
	"context"

	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

func (r *assignmentRepositoryImpl) Upsert(ctx context.Context, a assignment.Assignment) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO project_workers (project_id, worker_id)
		VALUES ($1, $2)
		ON CONFLICT (project_id, worker_id) DO NOTHING
	`, a.ProjectID, a.WorkerID)
	return err
}

func (r *assignmentRepositoryImpl) Delete(ctx context.Context, projectID, workerID int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM project_workers WHERE project_id = $1 AND worker_id = $2
	`, projectID, workerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

func (r *assignmentRepositoryImpl) ListWorkerIDsByProject(ctx context.Context, projectID int64) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT worker_id FROM project_workers WHERE project_id = $1
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *assignmentRepositoryImpl) ListByAccount(ctx context.Context, accountID int64) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT pw.project_id, pw.worker_id, pw.created_at
		FROM project_workers pw
		JOIN projects p ON p.id = pw.project_id
		WHERE p.account_id = $1
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		if err := rows.Scan(&a.ProjectID, &a.WorkerID, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}
