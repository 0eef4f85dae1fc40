package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chronnix/chronnix-backend-go/internal/domain/team"
	"github.com/chronnix/chronnix-backend-go/internal/handler/http/response"
)

type TeamHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	AddMember(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
}

type TeamHandlerImpl struct {
	teamService team.Service
}

func NewTeamHandler(teamService team.Service) TeamHandler {
	return &TeamHandlerImpl{teamService: teamService}
}

// Create implements TeamHandler.
func (h *TeamHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req team.CreateTeamRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTeam decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.teamService.CreateTeam(r.Context(), req)
	if err != nil {
		slog.Error("CreateTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team created successfully", created)
}

// Get implements TeamHandler.
func (h *TeamHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}

	found, err := h.teamService.GetTeam(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements TeamHandler.
func (h *TeamHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		slog.Error("ListTeams service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, teams)
}

// Update implements TeamHandler.
func (h *TeamHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}

	var req team.UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTeam decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.teamService.UpdateTeam(r.Context(), req)
	if err != nil {
		slog.Error("UpdateTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team updated successfully", updated)
}

// Delete implements TeamHandler.
func (h *TeamHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), id); err != nil {
		slog.Error("DeleteTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team deleted successfully", nil)
}

// AddMember implements TeamHandler.
func (h *TeamHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}

	var req team.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddMember decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TeamID = teamID

	if err := h.teamService.AddMember(r.Context(), req); err != nil {
		slog.Error("AddMember service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member added successfully", nil)
}

// RemoveMember implements TeamHandler.
func (h *TeamHandlerImpl) RemoveMember(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}
	workerID, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}

	req := team.MemberRequest{TeamID: teamID, WorkerID: workerID}
	if err := h.teamService.RemoveMember(r.Context(), req); err != nil {
		slog.Error("RemoveMember service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member removed successfully", nil)
}
