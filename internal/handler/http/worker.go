package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/handler/http/response"
)

const maxDocumentSize = 20 << 20 // 20 MiB

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	AddCost(w http.ResponseWriter, r *http.Request)
	UpdateCost(w http.ResponseWriter, r *http.Request)
	DeleteCost(w http.ResponseWriter, r *http.Request)

	AddDocument(w http.ResponseWriter, r *http.Request)
	DeleteDocument(w http.ResponseWriter, r *http.Request)
	DownloadDocument(w http.ResponseWriter, r *http.Request)

	CheckCompliance(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService worker.Service
}

func NewWorkerHandler(workerService worker.Service) WorkerHandler {
	return &WorkerHandlerImpl{workerService: workerService}
}

// Create implements WorkerHandler.
func (h *WorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateWorker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.workerService.CreateWorker(r.Context(), req)
	if err != nil {
		slog.Error("CreateWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created successfully", created)
}

// Get implements WorkerHandler.
func (h *WorkerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}

	found, err := h.workerService.GetWorker(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worker.WorkerListFilter{
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("team_id"); raw != "" {
		teamID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "team_id must be an integer", nil)
			return
		}
		filter.TeamID = &teamID
	}
	if raw := r.URL.Query().Get("compliant"); raw != "" {
		compliant, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "compliant must be a boolean", nil)
			return
		}
		filter.Compliant = &compliant
	}

	workers, err := h.workerService.ListWorkers(r.Context(), filter)
	if err != nil {
		slog.Error("ListWorkers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// Update implements WorkerHandler.
func (h *WorkerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}

	var req worker.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateWorker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.workerService.UpdateWorker(r.Context(), req)
	if err != nil {
		slog.Error("UpdateWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", updated)
}

// Delete implements WorkerHandler.
func (h *WorkerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}

	if err := h.workerService.DeleteWorker(r.Context(), id); err != nil {
		slog.Error("DeleteWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker deleted successfully", nil)
}

// AddCost implements WorkerHandler.
func (h *WorkerHandlerImpl) AddCost(w http.ResponseWriter, r *http.Request) {
	workerID, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}

	var req worker.CreateCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddCost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkerID = workerID

	cost, err := h.workerService.AddCost(r.Context(), req)
	if err != nil {
		slog.Error("AddCost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Additional cost created successfully", cost)
}

// UpdateCost implements WorkerHandler.
func (h *WorkerHandlerImpl) UpdateCost(w http.ResponseWriter, r *http.Request) {
	workerID, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}
	costID, ok := pathID(w, r, "costID")
	if !ok {
		return
	}

	var req worker.UpdateCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateCost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkerID = workerID
	req.ID = costID

	if err := h.workerService.UpdateCost(r.Context(), req); err != nil {
		slog.Error("UpdateCost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Additional cost updated successfully", nil)
}

// DeleteCost implements WorkerHandler.
func (h *WorkerHandlerImpl) DeleteCost(w http.ResponseWriter, r *http.Request) {
	workerID, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}
	costID, ok := pathID(w, r, "costID")
	if !ok {
		return
	}

	if err := h.workerService.DeleteCost(r.Context(), workerID, costID); err != nil {
		slog.Error("DeleteCost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Additional cost deleted successfully", nil)
}

// AddDocument implements WorkerHandler. The document arrives as a
// multipart form: a "file" part plus "kind" and optional "valid_until"
// fields.
func (h *WorkerHandlerImpl) AddDocument(w http.ResponseWriter, r *http.Request) {
	workerID, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		slog.Error("AddDocument parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file is required", nil)
		return
	}
	defer file.Close()

	req := worker.CreateDocumentRequest{
		WorkerID: workerID,
		Kind:     r.FormValue("kind"),
		FileName: header.Filename,
	}
	if validUntil := r.FormValue("valid_until"); validUntil != "" {
		req.ValidUntil = &validUntil
	}

	doc, err := h.workerService.AddDocument(r.Context(), req, file)
	if err != nil {
		slog.Error("AddDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded successfully", doc)
}

// DeleteDocument implements WorkerHandler.
func (h *WorkerHandlerImpl) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID, ok := pathID(w, r, "documentID")
	if !ok {
		return
	}

	if err := h.workerService.DeleteDocument(r.Context(), docID); err != nil {
		slog.Error("DeleteDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted successfully", nil)
}

// DownloadDocument implements WorkerHandler.
func (h *WorkerHandlerImpl) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	docID, ok := pathID(w, r, "documentID")
	if !ok {
		return
	}

	content, filename, err := h.workerService.DownloadDocument(r.Context(), docID)
	if err != nil {
		slog.Error("DownloadDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.Copy(w, content); err != nil {
		slog.Error("DownloadDocument copy error", "error", err)
	}
}

// CheckCompliance implements WorkerHandler.
func (h *WorkerHandlerImpl) CheckCompliance(w http.ResponseWriter, r *http.Request) {
	workerID, ok := pathID(w, r, "workerID")
	if !ok {
		return
	}

	compliance, err := h.workerService.CheckCompliance(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, compliance)
}

// pathID parses a positive integer URL parameter, writing the error
// response itself when the value is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, name+" must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
