package client

import (
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/validator"
)

type CreateClientRequest struct {
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.ContactEmail != nil && !validator.IsValidEmail(*r.ContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_email",
			Message: "contact_email must be a valid email address",
		})
	}
	if r.ContactPhone != nil && !validator.IsValidPhoneNumber(*r.ContactPhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_phone",
			Message: "contact_phone must be a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateClientRequest struct {
	CreateClientRequest
	ID int64 `json:"-"`
}

// ClientResponse groups a client's projects with its optional profile.
type ClientResponse struct {
	Name         string                    `json:"name"`
	Slug         string                    `json:"slug"`
	ProfileID    *int64                    `json:"profile_id,omitempty"`
	ContactName  *string                   `json:"contact_name,omitempty"`
	ContactEmail *string                   `json:"contact_email,omitempty"`
	ContactPhone *string                   `json:"contact_phone,omitempty"`
	Address      *string                   `json:"address,omitempty"`
	Projects     []project.ProjectResponse `json:"projects"`
}
