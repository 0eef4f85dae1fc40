package worker

import (
	"context"
	"io"
)

type Service interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	GetWorker(ctx context.Context, id int64) (WorkerResponse, error)
	ListWorkers(ctx context.Context, filter WorkerListFilter) ([]WorkerResponse, error)
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)
	DeleteWorker(ctx context.Context, id int64) error

	AddCost(ctx context.Context, req CreateCostRequest) (CostResponse, error)
	UpdateCost(ctx context.Context, req UpdateCostRequest) error
	DeleteCost(ctx context.Context, workerID, costID int64) error

	AddDocument(ctx context.Context, req CreateDocumentRequest, file io.Reader) (DocResponse, error)
	DeleteDocument(ctx context.Context, docID int64) error
	DownloadDocument(ctx context.Context, docID int64) (io.ReadCloser, string, error)

	// CheckCompliance evaluates one worker against the account's company
	// settings and the required document kinds.
	CheckCompliance(ctx context.Context, id int64) (Compliance, error)
}
