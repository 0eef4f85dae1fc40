package assignment

import "github.com/chronnix/chronnix-backend-go/internal/pkg/validator"

type AssignRequest struct {
	ProjectID int64 `json:"project_id"`
	WorkerID  int64 `json:"worker_id"`
}

func (r *AssignRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}
