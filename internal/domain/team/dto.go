package team

import "github.com/chronnix/chronnix-backend-go/internal/pkg/validator"

type CreateTeamRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

func (r *CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTeamRequest struct {
	CreateTeamRequest
	ID int64 `json:"-"`
}

type MemberRequest struct {
	TeamID   int64 `json:"-"`
	WorkerID int64 `json:"worker_id"`
}

func (r *MemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkerID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeamResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Color     *string `json:"color,omitempty"`
	MemberIDs []int64 `json:"member_ids"`
}
