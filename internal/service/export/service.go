package export

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/domain/timesheet"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
)

type ExportServiceImpl struct {
	projectRepo    project.ProjectRepository
	workerRepo     worker.WorkerRepository
	assignmentRepo assignment.AssignmentRepository
	timeEntryRepo  timesheet.TimeEntryRepository
}

func NewExportService(
	projectRepo project.ProjectRepository,
	workerRepo worker.WorkerRepository,
	assignmentRepo assignment.AssignmentRepository,
	timeEntryRepo timesheet.TimeEntryRepository,
) timesheet.ExportService {
	return &ExportServiceImpl{
		projectRepo:    projectRepo,
		workerRepo:     workerRepo,
		assignmentRepo: assignmentRepo,
		timeEntryRepo:  timeEntryRepo,
	}
}

// Export implements timesheet.ExportService.
func (s *ExportServiceImpl) Export(ctx context.Context, req timesheet.ExportRequest) (string, []byte, error) {
	if err := req.Validate(); err != nil {
		return "", nil, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return "", nil, err
	}

	kind, err := timecalc.ParseExportKind(req.Kind)
	if err != nil {
		return "", nil, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID, accountID); err != nil {
		return "", nil, err
	}

	period, err := timecalc.ParseMonth(req.Month)
	if err != nil {
		return "", nil, err
	}

	dataset, err := s.buildDataset(ctx, accountID, req.ProjectID, period)
	if err != nil {
		return "", nil, err
	}

	sheet, err := timecalc.BuildSheet(kind, dataset)
	if err != nil {
		return "", nil, err
	}

	content, err := renderWorkbook(sheet, kind)
	if err != nil {
		return "", nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("timesheet-%d-%s-%s.xlsx", req.ProjectID, req.Month, kind)
	return filename, content, nil
}

// buildDataset loads the export scope: the project's assigned workers,
// ordered for the sheets, plus their entries for the period.
func (s *ExportServiceImpl) buildDataset(ctx context.Context, accountID, projectID int64, period timecalc.Period) (timecalc.Dataset, error) {
	workers, err := s.workerRepo.ListByAccount(ctx, accountID, worker.WorkerListFilter{})
	if err != nil {
		return timecalc.Dataset{}, err
	}

	assignedIDs, err := s.assignmentRepo.ListWorkerIDsByProject(ctx, projectID)
	if err != nil {
		return timecalc.Dataset{}, err
	}
	assigned := make(map[int64]bool, len(assignedIDs))
	for _, id := range assignedIDs {
		assigned[id] = true
	}

	roster := make([]timecalc.RosterWorker, 0, len(assignedIDs))
	for _, w := range workers {
		if !assigned[w.ID] {
			continue
		}
		roster = append(roster, w.RosterWorker())
	}
	timecalc.SortRoster(roster)

	entries, err := s.timeEntryRepo.ListByProjectPeriod(ctx, projectID, period.Start, period.End)
	if err != nil {
		return timecalc.Dataset{}, err
	}

	calcEntries := make([]timecalc.Entry, 0, len(entries))
	for _, e := range entries {
		calcEntries = append(calcEntries, e.CalcEntry())
	}

	return timecalc.Dataset{
		Workers: roster,
		Days:    period.Days(),
		Entries: timecalc.IndexEntries(calcEntries),
	}, nil
}

func accountIDFromContext(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	accountID, ok := claims["account_id"].(float64)
	if !ok || accountID <= 0 {
		return 0, fmt.Errorf("account_id claim is missing or invalid")
	}

	return int64(accountID), nil
}
