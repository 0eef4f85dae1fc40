package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chronnix/chronnix-backend-go/internal/domain/timesheet"
	"github.com/chronnix/chronnix-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TimesheetHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	UpsertEntry(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.Service
	exportService    timesheet.ExportService
}

func NewTimesheetHandler(timesheetService timesheet.Service, exportService timesheet.ExportService) TimesheetHandler {
	return &TimesheetHandlerImpl{
		timesheetService: timesheetService,
		exportService:    exportService,
	}
}

// Get implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	req := timesheet.GetTimesheetRequest{
		ProjectID: projectID,
		Month:     r.URL.Query().Get("month"),
	}

	sheet, err := h.timesheetService.GetTimesheet(r.Context(), req)
	if err != nil {
		slog.Error("GetTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sheet)
}

// UpsertEntry implements TimesheetHandler.
func (h *TimesheetHandlerImpl) UpsertEntry(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	var req timesheet.UpsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = projectID

	cell, err := h.timesheetService.UpsertEntry(r.Context(), req)
	if err != nil {
		slog.Error("UpsertEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, cell)
}

// Export implements TimesheetHandler. The workbook is streamed as an
// attachment rather than wrapped in the JSON envelope.
func (h *TimesheetHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	req := timesheet.ExportRequest{
		ProjectID: projectID,
		Month:     r.URL.Query().Get("month"),
		Kind:      r.URL.Query().Get("kind"),
	}

	filename, content, err := h.exportService.Export(r.Context(), req)
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(content); err != nil {
		slog.Error("Export write error", "error", err)
	}
}
