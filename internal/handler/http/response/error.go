package response

import (
	"errors"
	"net/http"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/domain/auth"
	"github.com/chronnix/chronnix-backend-go/internal/domain/client"
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/domain/team"
	"github.com/chronnix/chronnix-backend-go/internal/domain/timesheet"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidLoginCode):
		Unauthorized(w, "Invalid login code")
	case errors.Is(err, auth.ErrLoginCodeExpired):
		Unauthorized(w, "Login code expired")
	case errors.Is(err, auth.ErrLoginCodeConsumed):
		Unauthorized(w, "Login code already used")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid refresh token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Account domain errors
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrSettingsNotFound):
		NotFound(w, "Company settings not found")
	case errors.Is(err, account.ErrInvalidLogo):
		BadRequest(w, "Logo must be a png, jpg, svg or webp file", nil)

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrCostNotFound):
		NotFound(w, "Additional cost not found")
	case errors.Is(err, worker.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, worker.ErrEmailTaken):
		Conflict(w, "A worker with this email already exists")

	// Project and planning errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Worker is not assigned to this project")
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrNameTaken):
		Conflict(w, "A team with this name already exists")
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrSlugTaken):
		Conflict(w, "A client with this name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
