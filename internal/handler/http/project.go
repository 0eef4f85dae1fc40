package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	GetRoster(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService    project.Service
	assignmentService assignment.Service
}

func NewProjectHandler(projectService project.Service, assignmentService assignment.Service) ProjectHandler {
	return &ProjectHandlerImpl{
		projectService:    projectService,
		assignmentService: assignmentService,
	}
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.projectService.CreateProject(r.Context(), req)
	if err != nil {
		slog.Error("CreateProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", created)
}

// Get implements ProjectHandler.
func (h *ProjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	found, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := project.ProjectListFilter{
		Search: r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("include_archived"); raw != "" {
		includeArchived, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "include_archived must be a boolean", nil)
			return
		}
		filter.IncludeArchived = includeArchived
	}

	projects, err := h.projectService.ListProjects(r.Context(), filter)
	if err != nil {
		slog.Error("ListProjects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.projectService.UpdateProject(r.Context(), req)
	if err != nil {
		slog.Error("UpdateProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", updated)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(r.Context(), id); err != nil {
		slog.Error("DeleteProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}

// GetRoster implements ProjectHandler.
func (h *ProjectHandlerImpl) GetRoster(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	roster, err := h.projectService.GetRoster(r.Context(), id)
	if err != nil {
		slog.Error("GetRoster service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, roster)
}

// Assign implements ProjectHandler.
func (h *ProjectHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	workerID, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}

	req := assignment.AssignRequest{ProjectID: projectID, WorkerID: workerID}
	if err := h.assignmentService.Assign(r.Context(), req); err != nil {
		slog.Error("Assign service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker assigned successfully", nil)
}

// Unassign implements ProjectHandler. Removing a worker also deletes
// their time entries on this project.
func (h *ProjectHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	workerID, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}

	req := assignment.AssignRequest{ProjectID: projectID, WorkerID: workerID}
	if err := h.assignmentService.Unassign(r.Context(), req); err != nil {
		slog.Error("Unassign service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker removed from project", nil)
}
