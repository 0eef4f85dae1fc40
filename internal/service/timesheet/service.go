package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/domain/team"
	"github.com/chronnix/chronnix-backend-go/internal/domain/timesheet"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	projectRepo    project.ProjectRepository
	workerRepo     worker.WorkerRepository
	assignmentRepo assignment.AssignmentRepository
	timeEntryRepo  timesheet.TimeEntryRepository
	teamRepo       team.TeamRepository
	accountRepo    account.AccountRepository
}

func NewTimesheetService(
	projectRepo project.ProjectRepository,
	workerRepo worker.WorkerRepository,
	assignmentRepo assignment.AssignmentRepository,
	timeEntryRepo timesheet.TimeEntryRepository,
	teamRepo team.TeamRepository,
	accountRepo account.AccountRepository,
) timesheet.Service {
	return &TimesheetServiceImpl{
		projectRepo:    projectRepo,
		workerRepo:     workerRepo,
		assignmentRepo: assignmentRepo,
		timeEntryRepo:  timeEntryRepo,
		teamRepo:       teamRepo,
		accountRepo:    accountRepo,
	}
}

// GetTimesheet implements timesheet.Service.
func (s *TimesheetServiceImpl) GetTimesheet(ctx context.Context, req timesheet.GetTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, req.ProjectID, accountID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	period, err := timecalc.ParseMonth(req.Month)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	days := period.Days()

	workers, err := s.workerRepo.ListByAccount(ctx, accountID, worker.WorkerListFilter{})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	assignedIDs, err := s.assignmentRepo.ListWorkerIDsByProject(ctx, req.ProjectID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	assigned := make(map[int64]bool, len(assignedIDs))
	for _, id := range assignedIDs {
		assigned[id] = true
	}

	entries, err := s.timeEntryRepo.ListByProjectPeriod(ctx, req.ProjectID, period.Start, period.End)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	teams, err := s.teamRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	settings, err := s.accountRepo.GetSettings(ctx, accountID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	roster := make([]timecalc.RosterWorker, 0, len(workers))
	for _, w := range workers {
		roster = append(roster, w.RosterWorker())
	}
	calcEntries := make([]timecalc.Entry, 0, len(entries))
	for _, e := range entries {
		calcEntries = append(calcEntries, e.CalcEntry())
	}
	agg := timecalc.Aggregate(roster, days, calcEntries)

	now := time.Now().UTC()
	rosterRows := make([]timesheet.RosterRow, 0, len(workers))
	for _, w := range workers {
		hours := agg.WorkerHours(w.ID)
		rosterRows = append(rosterRows, timesheet.RosterRow{
			Worker:     workerSummary(w),
			Assigned:   assigned[w.ID],
			Compliance: worker.EvaluateCompliance(w, settings, now),
			Totals: timesheet.WorkerTotals{
				Hours:      hours,
				HoursHHMM:  timecalc.FormatHHMM(hours),
				WorkedDays: agg.WorkerWorkedDays(w.ID),
			},
		})
	}

	dayResponses := make([]timesheet.DayResponse, 0, len(days))
	perDay := make(map[string]decimal.Decimal, len(days))
	for _, d := range days {
		dayResponses = append(dayResponses, timesheet.DayResponse{
			Key:     d.Key,
			Label:   d.Label,
			Weekend: d.Weekend,
		})
		perDay[d.Key] = agg.DayTotal(d.Key)
	}

	cells := make([]timesheet.EntryCell, 0, len(entries))
	for _, e := range entries {
		cells = append(cells, toCell(e))
	}

	teamResponses := make([]team.TeamResponse, 0, len(teams))
	for _, t := range teams {
		memberIDs := t.MemberIDs
		if memberIDs == nil {
			memberIDs = []int64{}
		}
		teamResponses = append(teamResponses, team.TeamResponse{
			ID:        t.ID,
			Name:      t.Name,
			Color:     t.Color,
			MemberIDs: memberIDs,
		})
	}

	total := agg.TotalHours()
	return timesheet.TimesheetResponse{
		Project: project.ProjectResponse{
			ID:           p.ID,
			Name:         p.Name,
			ClientName:   p.ClientName,
			BillingRate:  p.BillingRate,
			DefaultHours: p.DefaultHours,
			Archived:     p.Archived,
		},
		Roster:  rosterRows,
		Days:    dayResponses,
		Entries: cells,
		Teams:   teamResponses,
		Totals: timesheet.TimesheetTotals{
			TotalHours:     total,
			TotalHoursHHMM: timecalc.FormatHHMM(total),
			PerDay:         perDay,
		},
	}, nil
}

// UpsertEntry implements timesheet.Service.
func (s *TimesheetServiceImpl) UpsertEntry(ctx context.Context, req timesheet.UpsertEntryRequest) (timesheet.EntryCell, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryCell{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return timesheet.EntryCell{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID, accountID); err != nil {
		return timesheet.EntryCell{}, err
	}
	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID, accountID); err != nil {
		return timesheet.EntryCell{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	hours := decimal.Zero
	status := timecalc.StatusWorked
	switch req.Hours {
	case "", timecalc.AbsenceLabel:
		status = timecalc.StatusAbsent
	default:
		hours, err = timecalc.ParseHHMM(req.Hours)
		if err != nil {
			return timesheet.EntryCell{}, err
		}
	}
	if req.Status != nil {
		status = timecalc.EntryStatus(*req.Status)
	}

	// A deliberate absence is stored as an explicit zero-hours row so it
	// survives re-aggregation and keeps its note and schedule times;
	// stored hours are always quarter-hour multiples. Writing an entry
	// never touches the project roster.
	hours, status = timecalc.Normalize(hours, status)

	saved, err := s.timeEntryRepo.Upsert(ctx, timesheet.TimeEntry{
		AccountID: accountID,
		ProjectID: req.ProjectID,
		WorkerID:  req.WorkerID,
		Date:      date,
		Hours:     hours,
		Status:    status,
		Note:      req.Note,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return timesheet.EntryCell{}, err
	}

	return toCell(saved), nil
}

func toCell(e timesheet.TimeEntry) timesheet.EntryCell {
	cell := timesheet.EntryCell{
		WorkerID:  e.WorkerID,
		Date:      e.DayKey(),
		Status:    e.Status,
		Note:      e.Note,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
	}
	if e.Status == timecalc.StatusAbsent {
		cell.Hours = timecalc.AbsenceLabel
	} else {
		cell.Hours = timecalc.FormatHHMM(e.Hours)
	}
	return cell
}

func workerSummary(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:              w.ID,
		FirstName:       w.FirstName,
		LastName:        w.LastName,
		Email:           w.Email,
		Status:          w.Status,
		PayRate:         w.PayRate,
		ChargesPct:      w.ChargesPct,
		IncludeInExport: w.IncludeInExport,
	}
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
