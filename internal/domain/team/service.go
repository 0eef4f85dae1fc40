package team

import "context"

type Service interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (TeamResponse, error)
	GetTeam(ctx context.Context, id int64) (TeamResponse, error)
	ListTeams(ctx context.Context) ([]TeamResponse, error)
	UpdateTeam(ctx context.Context, req UpdateTeamRequest) (TeamResponse, error)
	DeleteTeam(ctx context.Context, id int64) error

	AddMember(ctx context.Context, req MemberRequest) error
	RemoveMember(ctx context.Context, req MemberRequest) error
}
