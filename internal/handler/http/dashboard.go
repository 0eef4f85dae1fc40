package http

import (
	"log/slog"
	"net/http"

	"github.com/chronnix/chronnix-backend-go/internal/domain/dashboard"
	"github.com/chronnix/chronnix-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetSnapshot(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetSnapshot implements DashboardHandler.
func (h *DashboardHandlerImpl) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	req := dashboard.SnapshotRequest{
		Mode:  r.URL.Query().Get("mode"),
		Value: r.URL.Query().Get("value"),
	}
	if req.Mode == "" {
		req.Mode = "month"
	}

	snapshot, err := h.dashboardService.GetSnapshot(r.Context(), req)
	if err != nil {
		slog.Error("GetSnapshot service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}
