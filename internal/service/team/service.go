package team

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/team"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
)

type TeamServiceImpl struct {
	teamRepo   team.TeamRepository
	workerRepo worker.WorkerRepository
}

func NewTeamService(teamRepo team.TeamRepository, workerRepo worker.WorkerRepository) team.Service {
	return &TeamServiceImpl{
		teamRepo:   teamRepo,
		workerRepo: workerRepo,
	}
}

// CreateTeam implements team.Service.
func (s *TeamServiceImpl) CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return team.TeamResponse{}, err
	}

	created, err := s.teamRepo.Create(ctx, team.Team{
		AccountID: accountID,
		Name:      req.Name,
		Color:     req.Color,
	})
	if err != nil {
		return team.TeamResponse{}, err
	}

	return toResponse(created), nil
}

// GetTeam implements team.Service.
func (s *TeamServiceImpl) GetTeam(ctx context.Context, id int64) (team.TeamResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return team.TeamResponse{}, err
	}

	t, err := s.teamRepo.GetByID(ctx, id, accountID)
	if err != nil {
		return team.TeamResponse{}, err
	}

	return toResponse(t), nil
}

// ListTeams implements team.Service.
func (s *TeamServiceImpl) ListTeams(ctx context.Context) ([]team.TeamResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	responses := make([]team.TeamResponse, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, toResponse(t))
	}

	return responses, nil
}

// UpdateTeam implements team.Service.
func (s *TeamServiceImpl) UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return team.TeamResponse{}, err
	}

	t, err := s.teamRepo.GetByID(ctx, req.ID, accountID)
	if err != nil {
		return team.TeamResponse{}, err
	}

	t.Name = req.Name
	if req.Color != nil {
		t.Color = req.Color
	}

	if err := s.teamRepo.Update(ctx, t); err != nil {
		return team.TeamResponse{}, err
	}

	return toResponse(t), nil
}

// DeleteTeam implements team.Service.
func (s *TeamServiceImpl) DeleteTeam(ctx context.Context, id int64) error {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.teamRepo.Delete(ctx, id, accountID)
}

// AddMember implements team.Service.
func (s *TeamServiceImpl) AddMember(ctx context.Context, req team.MemberRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.teamRepo.GetByID(ctx, req.TeamID, accountID); err != nil {
		return err
	}
	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID, accountID); err != nil {
		return err
	}

	return s.teamRepo.AddMember(ctx, req.TeamID, req.WorkerID)
}

// RemoveMember implements team.Service.
func (s *TeamServiceImpl) RemoveMember(ctx context.Context, req team.MemberRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.teamRepo.GetByID(ctx, req.TeamID, accountID); err != nil {
		return err
	}

	return s.teamRepo.RemoveMember(ctx, req.TeamID, req.WorkerID)
}

func toResponse(t team.Team) team.TeamResponse {
	memberIDs := t.MemberIDs
	if memberIDs == nil {
		memberIDs = []int64{}
	}
	return team.TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		MemberIDs: memberIDs,
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
