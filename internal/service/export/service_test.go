package export

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/domain/timesheet"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
)

type stubWorkerRepo struct {
	worker.WorkerRepository
	workers []worker.Worker
}

func (s *stubWorkerRepo) ListByAccount(ctx context.Context, accountID int64, filter worker.WorkerListFilter) ([]worker.Worker, error) {
	return s.workers, nil
}

type stubAssignmentRepo struct {
	assignment.AssignmentRepository
	workerIDs []int64
}

func (s *stubAssignmentRepo) ListWorkerIDsByProject(ctx context.Context, projectID int64) ([]int64, error) {
	return s.workerIDs, nil
}

type stubTimeEntryRepo struct {
	timesheet.TimeEntryRepository
	entries []timesheet.TimeEntry
}

func (s *stubTimeEntryRepo) ListByProjectPeriod(ctx context.Context, projectID int64, from, to time.Time) ([]timesheet.TimeEntry, error) {
	return s.entries, nil
}

func TestBuildDatasetUsesProjectRoster(t *testing.T) {
	rate := decimal.NewFromInt(25)
	svc := &ExportServiceImpl{
		workerRepo: &stubWorkerRepo{workers: []worker.Worker{
			{ID: 1, FirstName: "Alice", LastName: "Dupont", PayRate: &rate, IncludeInExport: false},
			{ID: 2, FirstName: "Bob", LastName: "Martin", IncludeInExport: true},
		}},
		assignmentRepo: &stubAssignmentRepo{workerIDs: []int64{1}},
		timeEntryRepo: &stubTimeEntryRepo{entries: []timesheet.TimeEntry{
			{
				WorkerID: 1,
				Date:     time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
				Hours:    decimal.NewFromInt(8),
				Status:   timecalc.StatusWorked,
			},
		}},
	}

	period, err := timecalc.ParseMonth("2025-03")
	require.NoError(t, err)

	dataset, err := svc.buildDataset(context.Background(), 1, 10, period)
	require.NoError(t, err)

	// The roster is the project's assigned workers: the includeInExport
	// flag does not hide an assigned worker, and workers never assigned
	// to the project stay out.
	require.Len(t, dataset.Workers, 1)
	assert.Equal(t, int64(1), dataset.Workers[0].ID)

	sheet, err := timecalc.BuildSheet(timecalc.ExportPayroll, dataset)
	require.NoError(t, err)

	require.Len(t, sheet.Rows, 3) // header + worker + TOTAL
	assert.Equal(t, "DUPONT Alice", sheet.Rows[1][0])
	assert.Equal(t, "08:00", sheet.Rows[1][1])

	total := sheet.Rows[2]
	assert.Equal(t, "TOTAL", total[0])
	assert.Equal(t, "08:00", total[1])
	assert.Equal(t, 200.0, total[4])
}
