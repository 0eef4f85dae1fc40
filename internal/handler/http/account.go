package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
	"github.com/chronnix/chronnix-backend-go/internal/handler/http/response"
)

const maxLogoSize = 5 << 20 // 5 MiB

type AccountHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	GetCompanySettings(w http.ResponseWriter, r *http.Request)
	UpdateCompanySettings(w http.ResponseWriter, r *http.Request)
	UploadLogo(w http.ResponseWriter, r *http.Request)
}

type AccountHandlerImpl struct {
	accountService account.Service
}

func NewAccountHandler(accountService account.Service) AccountHandler {
	return &AccountHandlerImpl{accountService: accountService}
}

// GetProfile implements AccountHandler.
func (h *AccountHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.accountService.GetProfile(r.Context())
	if err != nil {
		slog.Error("GetProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// UpdateProfile implements AccountHandler.
func (h *AccountHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req account.UpdateAccountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.accountService.UpdateProfile(r.Context(), req)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account updated successfully", profile)
}

// GetCompanySettings implements AccountHandler.
func (h *AccountHandlerImpl) GetCompanySettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.accountService.GetCompanySettings(r.Context())
	if err != nil {
		slog.Error("GetCompanySettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// UpdateCompanySettings implements AccountHandler.
func (h *AccountHandlerImpl) UpdateCompanySettings(w http.ResponseWriter, r *http.Request) {
	var req account.UpdateCompanySettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateCompanySettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := h.accountService.UpdateCompanySettings(r.Context(), req)
	if err != nil {
		slog.Error("UpdateCompanySettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company settings updated successfully", settings)
}

// UploadLogo implements AccountHandler.
func (h *AccountHandlerImpl) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLogoSize); err != nil {
		slog.Error("UploadLogo parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		response.BadRequest(w, "logo file is required", nil)
		return
	}
	defer file.Close()

	settings, err := h.accountService.UploadLogo(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		slog.Error("UploadLogo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logo uploaded successfully", settings)
}
