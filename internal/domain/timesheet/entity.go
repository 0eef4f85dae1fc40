package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
)

// TimeEntry is one cell of the timesheet grid, keyed by
// (project_id, worker_id, date). An absence is stored as an explicit row
// with zero hours rather than the row being deleted, so a deliberate
// "ABS" survives re-aggregation.
type TimeEntry struct {
	ID        int64
	AccountID int64
	ProjectID int64
	WorkerID  int64
	Date      time.Time
	Hours     decimal.Decimal
	Status    timecalc.EntryStatus
	Note      *string
	StartTime *string
	EndTime   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayKey returns the grid key for this entry's date.
func (e TimeEntry) DayKey() string {
	return timecalc.DayKey(e.Date)
}

// CalcEntry converts to the shared computation shape.
func (e TimeEntry) CalcEntry() timecalc.Entry {
	return timecalc.Entry{
		WorkerID: e.WorkerID,
		DayKey:   e.DayKey(),
		Hours:    e.Hours,
		Status:   e.Status,
	}
}
