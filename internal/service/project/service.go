package project

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
)

type ProjectServiceImpl struct {
	projectRepo    project.ProjectRepository
	workerRepo     worker.WorkerRepository
	assignmentRepo assignment.AssignmentRepository
	accountRepo    account.AccountRepository
}

func NewProjectService(
	projectRepo project.ProjectRepository,
	workerRepo worker.WorkerRepository,
	assignmentRepo assignment.AssignmentRepository,
	accountRepo account.AccountRepository,
) project.Service {
	return &ProjectServiceImpl{
		projectRepo:    projectRepo,
		workerRepo:     workerRepo,
		assignmentRepo: assignmentRepo,
		accountRepo:    accountRepo,
	}
}

// CreateProject implements project.Service.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	p := project.Project{
		AccountID:  accountID,
		Name:       req.Name,
		ClientName: req.ClientName,
	}
	applyRates(&p, req)

	created, err := s.projectRepo.Create(ctx, p)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return toResponse(created), nil
}

// GetProject implements project.Service.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id int64) (project.ProjectResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, id, accountID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return toResponse(p), nil
}

// ListProjects implements project.Service.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filter project.ProjectListFilter) ([]project.ProjectResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListByAccount(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toResponse(p))
	}

	return responses, nil
}

// UpdateProject implements project.Service.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, req.ID, accountID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.ClientName != nil {
		p.ClientName = req.ClientName
	}
	if req.Archived != nil {
		p.Archived = *req.Archived
	}
	applyRates(&p, req.CreateProjectRequest)

	if err := s.projectRepo.Update(ctx, p); err != nil {
		return project.ProjectResponse{}, err
	}

	return toResponse(p), nil
}

// DeleteProject implements project.Service.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id int64) error {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.projectRepo.Delete(ctx, id, accountID)
}

// GetRoster implements project.Service.
func (s *ProjectServiceImpl) GetRoster(ctx context.Context, projectID int64) ([]project.RosterSlot, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID, accountID); err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.ListByAccount(ctx, accountID, worker.WorkerListFilter{})
	if err != nil {
		return nil, err
	}

	assignedIDs, err := s.assignmentRepo.ListWorkerIDsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	assigned := make(map[int64]bool, len(assignedIDs))
	for _, id := range assignedIDs {
		assigned[id] = true
	}

	settings, err := s.accountRepo.GetSettings(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	slots := make([]project.RosterSlot, 0, len(workers))
	for _, w := range workers {
		compliance := worker.EvaluateCompliance(w, settings, now)
		slots = append(slots, project.RosterSlot{
			Worker: worker.WorkerResponse{
				ID:              w.ID,
				FirstName:       w.FirstName,
				LastName:        w.LastName,
				Email:           w.Email,
				Status:          w.Status,
				PayRate:         w.PayRate,
				ChargesPct:      w.ChargesPct,
				IncludeInExport: w.IncludeInExport,
				Compliance:      compliance,
			},
			Assigned:   assigned[w.ID],
			Compliance: compliance,
		})
	}

	return slots, nil
}

func applyRates(p *project.Project, req project.CreateProjectRequest) {
	if req.BillingRate != nil {
		rate, _ := decimal.NewFromString(*req.BillingRate)
		p.BillingRate = &rate
	}
	if req.DefaultHours != nil {
		hours, _ := decimal.NewFromString(*req.DefaultHours)
		p.DefaultHours = &hours
	}
}

func toResponse(p project.Project) project.ProjectResponse {
	return project.ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		ClientName:   p.ClientName,
		BillingRate:  p.BillingRate,
		DefaultHours: p.DefaultHours,
		Archived:     p.Archived,
	}
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
