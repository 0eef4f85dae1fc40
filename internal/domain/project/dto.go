package project

import (
	"github.com/shopspring/decimal"

	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name         string  `json:"name"`
	ClientName   *string `json:"client_name,omitempty"`
	BillingRate  *string `json:"billing_rate,omitempty"`
	DefaultHours *string `json:"default_hours,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if r.BillingRate != nil {
		rate, err := decimal.NewFromString(*r.BillingRate)
		if err != nil || rate.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "billing_rate",
				Message: "billing_rate must be a non-negative decimal",
			})
		}
	}
	if r.DefaultHours != nil {
		hours, err := decimal.NewFromString(*r.DefaultHours)
		if err != nil || !hours.IsPositive() || hours.GreaterThan(decimal.NewFromInt(24)) {
			errs = append(errs, validator.ValidationError{
				Field:   "default_hours",
				Message: "default_hours must be a positive decimal up to 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProjectRequest struct {
	CreateProjectRequest
	ID       int64 `json:"-"`
	Archived *bool `json:"archived,omitempty"`
}

type ProjectListFilter struct {
	Search          string
	IncludeArchived bool
}

type ProjectResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	ClientName   *string          `json:"client_name,omitempty"`
	BillingRate  *decimal.Decimal `json:"billing_rate,omitempty"`
	DefaultHours *decimal.Decimal `json:"default_hours,omitempty"`
	Archived     bool             `json:"archived"`
}

// RosterSlot is one row of the project roster view: every account worker
// with their assignment flag and compliance state.
type RosterSlot struct {
	Worker     worker.WorkerResponse `json:"worker"`
	Assigned   bool                  `json:"assigned"`
	Compliance worker.Compliance     `json:"compliance"`
}
