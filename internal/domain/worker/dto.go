package worker

import (
	"github.com/shopspring/decimal"

	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/validator"
)

var validStatuses = []string{
	string(StatusSalarie),
	string(StatusIndependant),
	string(StatusAssocie),
}

var validDocumentKinds = []string{
	string(DocCareerAttestation),
	string(DocCI),
	string(DocVCA),
}

type CreateWorkerRequest struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	NationalID      *string `json:"national_id,omitempty"`
	Status          *string `json:"status,omitempty"`
	VATNumber       *string `json:"vat_number,omitempty"`
	PayRate         *string `json:"pay_rate,omitempty"`
	ChargesPct      *string `json:"charges_pct,omitempty"`
	IncludeInExport *bool   `json:"include_in_export,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: SALARIE, INDEPENDANT, ASSOCIE",
		})
	}
	if r.VATNumber != nil && !validator.IsValidVATNumber(*r.VATNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "vat_number",
			Message: "vat_number must be a valid VAT number",
		})
	}

	errs = append(errs, validateDecimalField("pay_rate", r.PayRate, false)...)
	errs = append(errs, validateDecimalField("charges_pct", r.ChargesPct, true)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkerRequest struct {
	CreateWorkerRequest
	ID int64 `json:"-"`
}

type WorkerListFilter struct {
	Search    string
	TeamID    *int64
	Compliant *bool
}

type CreateCostRequest struct {
	WorkerID int64  `json:"-"`
	Label    string `json:"label"`
	Unit     string `json:"unit"`
	Amount   string `json:"amount"`
}

func (r *CreateCostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}
	if !validator.IsInSlice(r.Unit, []string{string(timecalc.CostUnitHour), string(timecalc.CostUnitDay)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "unit",
			Message: "unit must be HOUR or DAY",
		})
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil || !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a positive decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCostRequest struct {
	CreateCostRequest
	ID int64 `json:"-"`
}

type CreateDocumentRequest struct {
	WorkerID   int64
	Kind       string
	FileName   string
	ValidUntil *string // "YYYY-MM-DD"
}

func (r *CreateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, validDocumentKinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: CAREER_ATTESTATION, CI, VCA",
		})
	}
	if validator.IsEmpty(r.FileName) {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file is required",
		})
	}
	if r.ValidUntil != nil {
		if _, ok := validator.IsValidDate(*r.ValidUntil); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "valid_until",
				Message: "valid_until must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateDecimalField(field string, value *string, allowZero bool) validator.ValidationErrors {
	if value == nil {
		return nil
	}

	d, err := decimal.NewFromString(*value)
	if err != nil {
		return validator.ValidationErrors{{
			Field:   field,
			Message: field + " must be a decimal number",
		}}
	}
	if d.IsNegative() {
		return validator.ValidationErrors{{
			Field:   field,
			Message: field + " must not be negative",
		}}
	}
	if !allowZero && d.IsZero() {
		return validator.ValidationErrors{{
			Field:   field,
			Message: field + " must be positive",
		}}
	}
	return nil
}

type WorkerResponse struct {
	ID              int64            `json:"id"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	Email           *string          `json:"email,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	NationalID      *string          `json:"national_id,omitempty"`
	Status          *WorkerStatus    `json:"status,omitempty"`
	VATNumber       *string          `json:"vat_number,omitempty"`
	PayRate         *decimal.Decimal `json:"pay_rate,omitempty"`
	ChargesPct      decimal.Decimal  `json:"charges_pct"`
	IncludeInExport bool             `json:"include_in_export"`
	AdditionalCosts []CostResponse   `json:"additional_costs"`
	Documents       []DocResponse    `json:"documents"`
	Compliance      Compliance       `json:"compliance"`
}

type CostResponse struct {
	ID     int64             `json:"id"`
	Label  string            `json:"label"`
	Unit   timecalc.CostUnit `json:"unit"`
	Amount decimal.Decimal   `json:"amount"`
}

type DocResponse struct {
	ID         int64        `json:"id"`
	Kind       DocumentKind `json:"kind"`
	FileName   string       `json:"file_name"`
	ValidUntil *string      `json:"valid_until,omitempty"`
	Expired    bool         `json:"expired"`
}
