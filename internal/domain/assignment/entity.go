package assignment

import "time"

// Assignment links a worker to a project. The pair is the natural key;
// assigning twice is a no-op.
type Assignment struct {
	ProjectID int64
	WorkerID  int64
	CreatedAt time.Time
}
