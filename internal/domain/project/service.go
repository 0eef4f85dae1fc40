package project

import "context"

type Service interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetProject(ctx context.Context, id int64) (ProjectResponse, error)
	ListProjects(ctx context.Context, filter ProjectListFilter) ([]ProjectResponse, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	DeleteProject(ctx context.Context, id int64) error

	// GetRoster returns every account worker with assignment flags and
	// compliance for the project's worker picker.
	GetRoster(ctx context.Context, projectID int64) ([]RosterSlot, error)
}
