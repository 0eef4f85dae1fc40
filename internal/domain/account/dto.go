package account

import (
	"time"

	"github.com/chronnix/chronnix-backend-go/internal/pkg/validator"
)

type UpdateAccountRequest struct {
	Name     *string `json:"name,omitempty"`
	Locale   *string `json:"locale,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

var supportedLocales = []string{"fr", "nl", "en"}

func (r *UpdateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Locale != nil && !validator.IsInSlice(*r.Locale, supportedLocales) {
		errs = append(errs, validator.ValidationError{
			Field:   "locale",
			Message: "locale must be one of: fr, nl, en",
		})
	}

	if r.Timezone != nil {
		if _, err := time.LoadLocation(*r.Timezone); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timezone",
				Message: "timezone must be a valid IANA timezone",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompanySettingsRequest struct {
	BCENumber  *string `json:"bce_number,omitempty"`
	Verified   *bool   `json:"verified,omitempty"`
	ValidUntil *string `json:"valid_until,omitempty"` // "YYYY-MM-DD"
}

func (r *UpdateCompanySettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BCENumber != nil && validator.IsEmpty(*r.BCENumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "bce_number",
			Message: "bce_number must not be empty",
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

type AccountResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Locale   string  `json:"locale"`
	Timezone string  `json:"timezone"`
	Address  *string `json:"address,omitempty"`
}

type CompanySettingsResponse struct {
	BCENumber  *string `json:"bce_number,omitempty"`
	Verified   bool    `json:"verified"`
	ValidUntil *string `json:"valid_until,omitempty"`
	LogoURL    *string `json:"logo_url,omitempty"`
}
