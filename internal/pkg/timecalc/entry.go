package timecalc

import "github.com/shopspring/decimal"

type EntryStatus string

const (
	StatusWorked EntryStatus = "WORKED"
	StatusAbsent EntryStatus = "ABSENT"
)

type CostUnit string

const (
	CostUnitHour CostUnit = "HOUR"
	CostUnitDay  CostUnit = "DAY"
)

// Entry is one recorded day of a worker on a project, already scoped to
// the period under computation.
type Entry struct {
	WorkerID int64
	DayKey   string
	Hours    decimal.Decimal
	Status   EntryStatus
}

// AdditionalCost is an itemized extra billed per hour worked or per day
// worked on top of a worker's base pay.
type AdditionalCost struct {
	Label  string
	Unit   CostUnit
	Amount decimal.Decimal
}

// RosterWorker is the compensation view of one worker considered by the
// aggregation and valuation stages.
type RosterWorker struct {
	ID              int64
	FirstName       string
	LastName        string
	PayRate         *decimal.Decimal
	ChargesPct      decimal.Decimal
	AdditionalCosts []AdditionalCost
}

// Normalize applies the storage invariant: an absent or non-positive
// entry is always {hours: 0, status: ABSENT}. Worked hours are snapped to
// quarter-hour multiples.
func Normalize(hours decimal.Decimal, status EntryStatus) (decimal.Decimal, EntryStatus) {
	if status == StatusAbsent || hours.Sign() <= 0 {
		return decimal.Zero, StatusAbsent
	}
	return SnapQuarterHour(hours), StatusWorked
}

// countsAsWorked is the single gate used by aggregation: only explicit
// WORKED entries with positive hours contribute to totals.
func (e Entry) countsAsWorked() bool {
	return e.Status == StatusWorked && e.Hours.Sign() > 0
}
