package timesheet

import (
	"github.com/shopspring/decimal"

	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/domain/team"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/validator"
)

type GetTimesheetRequest struct {
	ProjectID int64
	Month     string // "YYYY-MM"
}

func (r *GetTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ProjectID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpsertEntryRequest struct {
	ProjectID int64   `json:"project_id"`
	WorkerID  int64   `json:"worker_id"`
	Date      string  `json:"date"`   // "YYYY-MM-DD"
	Hours     string  `json:"hours"`  // "HH:MM", "" or "ABS"
	Status    *string `json:"status,omitempty"`
	Note      *string `json:"note,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

func (r *UpsertEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ProjectID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}
	if r.WorkerID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	// "" and "ABS" mean absence; anything else must be HH:MM.
	if r.Hours != "" && r.Hours != timecalc.AbsenceLabel && !validator.IsValidHHMM(r.Hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be in HH:MM format, empty, or ABS",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(timecalc.StatusWorked),
		string(timecalc.StatusAbsent),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be WORKED or ABSENT",
		})
	}

	if r.StartTime != nil && *r.StartTime != "" && !validator.IsValidHHMM(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if r.EndTime != nil && *r.EndTime != "" && !validator.IsValidHHMM(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExportRequest struct {
	ProjectID int64
	Month     string
	Kind      string // payroll | detail | global; empty defaults to payroll
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ProjectID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	if r.Kind != "" && !validator.IsInSlice(r.Kind, []string{"payroll", "detail", "global"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be payroll, detail or global",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EntryCell is the wire shape of one grid cell. Note and the schedule
// times survive an absence so the context behind an "ABS" is not lost.
type EntryCell struct {
	WorkerID  int64                `json:"worker_id"`
	Date      string               `json:"date"`
	Hours     string               `json:"hours"` // "HH:MM" or "ABS"
	Status    timecalc.EntryStatus `json:"status"`
	Note      *string              `json:"note,omitempty"`
	StartTime *string              `json:"start_time,omitempty"`
	EndTime   *string              `json:"end_time,omitempty"`
}

type DayResponse struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Weekend bool   `json:"weekend"`
}

type WorkerTotals struct {
	Hours      decimal.Decimal `json:"hours"`
	HoursHHMM  string          `json:"hours_hhmm"`
	WorkedDays int             `json:"worked_days"`
}

type TimesheetResponse struct {
	Project project.ProjectResponse `json:"project"`
	Roster  []RosterRow             `json:"roster"`
	Days    []DayResponse           `json:"days"`
	Entries []EntryCell             `json:"entries"`
	Teams   []team.TeamResponse     `json:"teams"`
	Totals  TimesheetTotals         `json:"totals"`
}

type RosterRow struct {
	Worker     worker.WorkerResponse  `json:"worker"`
	Assigned   bool                   `json:"assigned"`
	Compliance worker.Compliance      `json:"compliance"`
	Totals     WorkerTotals           `json:"totals"`
}

type TimesheetTotals struct {
	TotalHours     decimal.Decimal            `json:"total_hours"`
	TotalHoursHHMM string                     `json:"total_hours_hhmm"`
	PerDay         map[string]decimal.Decimal `json:"per_day"`
}
