package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
)

// DocumentJobs sweeps worker compliance documents so expiries surface on
// the dashboard before they bite on site.
type DocumentJobs struct {
	workerRepo worker.WorkerRepository
}

func NewDocumentJobs(workerRepo worker.WorkerRepository) *DocumentJobs {
	return &DocumentJobs{workerRepo: workerRepo}
}

func (j *DocumentJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sweep_expiring_documents", 1*time.Hour, j.SweepExpiringDocuments)
}

func (j *DocumentJobs) SweepExpiringDocuments(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting document expiry sweep")

	cutoff := time.Now().UTC().AddDate(0, 0, 30)
	docs, err := j.workerRepo.ListDocumentsExpiringBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list expiring documents: %w", err)
	}

	now := time.Now().UTC()
	expired, expiring := 0, 0
	for _, doc := range docs {
		if doc.ValidOn(now) {
			expiring++
			slog.Info("Cron: Document expiring soon",
				"worker_id", doc.WorkerID,
				"kind", doc.Kind,
				"valid_until", doc.ValidUntil.Format("2006-01-02"))
		} else {
			expired++
		}
	}

	slog.Info("Cron: Document expiry sweep finished", "expired", expired, "expiring", expiring)
	return nil
}
