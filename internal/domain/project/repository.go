package project

import "context"

// ProjectRepository - interface for projects table
type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id, accountID int64) (Project, error)
	ListByAccount(ctx context.Context, accountID int64, filter ProjectListFilter) ([]Project, error)
	Update(ctx context.Context, p Project) error

	// Delete removes the project and cascades its assignments and time
	// entries in one transaction.
	Delete(ctx context.Context, id, accountID int64) error
}
