package team

import "context"

// TeamRepository - interface for teams and team_members tables
type TeamRepository interface {
	Create(ctx context.Context, t Team) (Team, error)
	GetByID(ctx context.Context, id, accountID int64) (Team, error)
	ListByAccount(ctx context.Context, accountID int64) ([]Team, error)
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, id, accountID int64) error

	AddMember(ctx context.Context, teamID, workerID int64) error
	RemoveMember(ctx context.Context, teamID, workerID int64) error
}
