package worker

import "errors"

var (
	ErrWorkerNotFound   = errors.New("Worker not found")
	ErrCostNotFound     = errors.New("Additional cost not found")
	ErrDocumentNotFound = errors.New("Document not found")
	ErrEmailTaken       = errors.New("A worker with this email already exists")
)
