package worker

import (
	"context"
	"time"
)

// WorkerRepository - interface for workers, worker_costs and
// worker_documents tables
type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id, accountID int64) (Worker, error)
	ListByAccount(ctx context.Context, accountID int64, filter WorkerListFilter) ([]Worker, error)
	Update(ctx context.Context, w Worker) error
	Delete(ctx context.Context, id, accountID int64) error

	CreateCost(ctx context.Context, cost AdditionalCost) (AdditionalCost, error)
	UpdateCost(ctx context.Context, cost AdditionalCost) error
	DeleteCost(ctx context.Context, costID, workerID int64) error

	CreateDocument(ctx context.Context, doc Document) (Document, error)
	GetDocumentByID(ctx context.Context, docID, accountID int64) (Document, error)
	DeleteDocument(ctx context.Context, docID, accountID int64) error
	ListDocumentsExpiringBefore(ctx context.Context, cutoff time.Time) ([]Document, error)
}
