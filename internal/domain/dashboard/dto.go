package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/chronnix/chronnix-backend-go/internal/pkg/validator"
)

type SnapshotRequest struct {
	Mode  string // "month" | "quarter"
	Value string // "YYYY-MM" | "YYYY-Qn"
}

func (r *SnapshotRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.Mode {
	case "month":
		if !validator.IsValidMonth(r.Value) {
			errs = append(errs, validator.ValidationError{
				Field:   "value",
				Message: "value must be in YYYY-MM format for month mode",
			})
		}
	case "quarter":
		if !validator.IsValidQuarter(r.Value) {
			errs = append(errs, validator.ValidationError{
				Field:   "value",
				Message: "value must be in YYYY-Qn format for quarter mode",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be month or quarter",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Totals carries the headline figures. Undefined figures (no billing
// rate anywhere, zero payroll) are nil, never zero.
type Totals struct {
	AmountToInvoice *decimal.Decimal `json:"amount_to_invoice"`
	AmountToPay     *decimal.Decimal `json:"amount_to_pay"`
	BillableHours   decimal.Decimal  `json:"billable_hours"`
	EstimatedMargin *decimal.Decimal `json:"estimated_margin"`
	PayrollCoverage *float64         `json:"payroll_coverage"`
}

type Overview struct {
	ActiveProjects int `json:"active_projects"`
	ActiveWorkers  int `json:"active_workers"`
	TotalWorkers   int `json:"total_workers"`
	TotalProjects  int `json:"total_projects"`
}

// TopItem is one row of a top-clients/projects/workers list.
type TopItem struct {
	ID      int64            `json:"id,omitempty"`
	Label   string           `json:"label"`
	Hours   decimal.Decimal  `json:"hours"`
	Invoice *decimal.Decimal `json:"invoice,omitempty"`
	Payroll *decimal.Decimal `json:"payroll,omitempty"`
}

// TrendBucket is one point of the invoice/payroll trend: a day for month
// mode, a month for quarter mode.
type TrendBucket struct {
	Key     string           `json:"key"`
	Label   string           `json:"label"`
	Invoice *decimal.Decimal `json:"invoice,omitempty"`
	Payroll *decimal.Decimal `json:"payroll,omitempty"`
	Hours   decimal.Decimal  `json:"hours"`
}

type WeeklyHours struct {
	WeekStart string          `json:"week_start"` // Monday, "YYYY-MM-DD"
	Hours     decimal.Decimal `json:"hours"`
}

// ProjectSlice is one slice of the hours-by-project distribution; the
// tail beyond the top five is folded into an "Autres" slice.
type ProjectSlice struct {
	ProjectID *int64          `json:"project_id,omitempty"`
	Label     string          `json:"label"`
	Hours     decimal.Decimal `json:"hours"`
	Share     *float64        `json:"share,omitempty"`
}

type WorkerActivity struct {
	WorkerID   int64           `json:"worker_id"`
	Name       string          `json:"name"`
	Hours      decimal.Decimal `json:"hours"`
	WorkedDays int             `json:"worked_days"`
	Projects   int             `json:"projects"`
}

type Alerts struct {
	ProjectsWithoutWorkers []TopItem `json:"projects_without_workers"`
	ExpiredDocuments       []Alert   `json:"expired_documents"`
	CompanyUnverified      bool      `json:"company_unverified"`
}

type Alert struct {
	WorkerID   int64  `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	Kind       string `json:"kind"`
	ValidUntil string `json:"valid_until,omitempty"`
}

type Snapshot struct {
	Mode            string           `json:"mode"`
	Value           string           `json:"value"`
	Totals          Totals           `json:"totals"`
	Overview        Overview         `json:"overview"`
	TopClients      []TopItem        `json:"top_clients"`
	TopProjects     []TopItem        `json:"top_projects"`
	TopWorkers      []TopItem        `json:"top_workers"`
	Trend           []TrendBucket    `json:"trend"`
	WeeklyHours     []WeeklyHours    `json:"weekly_hours"`
	ProjectSplit    []ProjectSlice   `json:"project_split"`
	WorkerActivity  []WorkerActivity `json:"worker_activity"`
	Alerts          Alerts           `json:"alerts"`
}
