package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/chronnix/chronnix-backend-go/internal/domain/auth"
	"github.com/chronnix/chronnix-backend-go/internal/handler/http/response"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	RequestCode(w http.ResponseWriter, r *http.Request)
	VerifyCode(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.Service
}

func NewAuthHandler(jwtService jwt.Service, authService auth.Service) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// RequestCode implements AuthHandler.
func (a *AuthHandlerImpl) RequestCode(w http.ResponseWriter, r *http.Request) {
	var req auth.RequestCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RequestCode decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("RequestCode validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := a.authService.RequestCode(r.Context(), req); err != nil {
		slog.Error("RequestCode service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Always report success so the endpoint cannot be used to probe
	// which emails exist.
	slog.Info("Login code request processed")
	response.SuccessWithMessage(w, "A login code has been sent", nil)
}

// VerifyCode implements AuthHandler.
func (a *AuthHandlerImpl) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req auth.VerifyCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("VerifyCode decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("VerifyCode validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.VerifyCode(r.Context(), req)
	if err != nil {
		slog.Error("VerifyCode service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshExp)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("User logged in successfully")
	response.Created(w, "User logged in successfully", tokenResponse)
}

// Refresh implements AuthHandler.
func (a *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := refreshTokenFromCookie(r)
	if !ok {
		response.Unauthorized(w, "Refresh token cookie is missing")
		return
	}

	tokenResponse, err := a.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		slog.Error("Refresh service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshExp)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("Token refreshed successfully")
	response.Created(w, "Token refreshed successfully", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := refreshTokenFromCookie(r)
	if !ok {
		response.Unauthorized(w, "Refresh token cookie is missing")
		return
	}

	if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	// Clear the refresh token cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	})
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}

func refreshTokenFromCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
