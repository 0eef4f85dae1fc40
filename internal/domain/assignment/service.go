package assignment

import "context"

type Service interface {
	// Assign links the worker to the project, idempotently.
	Assign(ctx context.Context, req AssignRequest) error

	// Unassign removes the link and deletes that worker's time entries
	// for the project. Entries on other projects are untouched.
	Unassign(ctx context.Context, req AssignRequest) error
}
