package dashboard

import "context"

type Service interface {
	// GetSnapshot computes the month or quarter dashboard for the
	// authenticated account. All valuation math goes through the shared
	// computation core, so dashboard and export figures always agree.
	GetSnapshot(ctx context.Context, req SnapshotRequest) (Snapshot, error)
}
