package project

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDayHours is what a full site day counts for when a project does
// not override it.
var DefaultDayHours = decimal.NewFromFloat(7.5)

type Project struct {
	ID           int64
	AccountID    int64
	Name         string
	ClientName   *string
	BillingRate  *decimal.Decimal
	DefaultHours *decimal.Decimal
	Archived     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DayHours returns the project's full-day duration, falling back to the
// account-wide default.
func (p Project) DayHours() decimal.Decimal {
	if p.DefaultHours != nil {
		return *p.DefaultHours
	}
	return DefaultDayHours
}
