package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/domain/timesheet"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
	"github.com/chronnix/chronnix-backend-go/internal/repository/postgresql"
)

type AssignmentServiceImpl struct {
	db             *database.DB
	assignmentRepo assignment.AssignmentRepository
	projectRepo    project.ProjectRepository
	workerRepo     worker.WorkerRepository
	timeEntryRepo  timesheet.TimeEntryRepository
}

func NewAssignmentService(
	db *database.DB,
	assignmentRepo assignment.AssignmentRepository,
	projectRepo project.ProjectRepository,
	workerRepo worker.WorkerRepository,
	timeEntryRepo timesheet.TimeEntryRepository,
) assignment.Service {
	return &AssignmentServiceImpl{
		db:             db,
		assignmentRepo: assignmentRepo,
		projectRepo:    projectRepo,
		workerRepo:     workerRepo,
		timeEntryRepo:  timeEntryRepo,
	}
}

// Assign implements assignment.Service.
func (s *AssignmentServiceImpl) Assign(ctx context.Context, req assignment.AssignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID, accountID); err != nil {
		return err
	}
	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID, accountID); err != nil {
		return err
	}

	return s.assignmentRepo.Upsert(ctx, assignment.Assignment{
		ProjectID: req.ProjectID,
		WorkerID:  req.WorkerID,
	})
}

// Unassign implements assignment.Service. Removing a worker from a
// project drops their time entries for that project only; hours on other
// projects stay put.
func (s *AssignmentServiceImpl) Unassign(ctx context.Context, req assignment.AssignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID, accountID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.assignmentRepo.Delete(txCtx, req.ProjectID, req.WorkerID); err != nil {
			return err
		}

		deleted, err := s.timeEntryRepo.DeleteByProjectWorker(txCtx, req.ProjectID, req.WorkerID)
		if err != nil {
			return err
		}

		slog.Info("Worker unassigned",
			"project_id", req.ProjectID,
			"worker_id", req.WorkerID,
			"entries_deleted", deleted)
		return nil
	})
}

func accountIDFromContext(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	accountID, ok := claims["account_id"].(float64)
	if !ok || accountID <= 0 {
		return 0, fmt.Errorf("account_id claim is missing or invalid")
	}

	return int64(accountID), nil
}
