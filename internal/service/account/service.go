package account

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/storage"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/validator"
)

type AccountServiceImpl struct {
	accountRepo account.AccountRepository
	fileStorage storage.FileStorage
}

func NewAccountService(accountRepo account.AccountRepository, fileStorage storage.FileStorage) account.Service {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		fileStorage: fileStorage,
	}
}

// GetProfile implements account.Service.
func (s *AccountServiceImpl) GetProfile(ctx context.Context) (account.AccountResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return account.AccountResponse{}, err
	}

	a, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return account.AccountResponse{}, err
	}

	return toAccountResponse(a), nil
}

// UpdateProfile implements account.Service.
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, req account.UpdateAccountRequest) (account.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return account.AccountResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return account.AccountResponse{}, err
	}

	a, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return account.AccountResponse{}, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Locale != nil {
		a.Locale = *req.Locale
	}
	if req.Timezone != nil {
		a.Timezone = *req.Timezone
	}
	if req.Address != nil {
		a.Address = req.Address
	}

	if err := s.accountRepo.Update(ctx, a); err != nil {
		return account.AccountResponse{}, err
	}

	return toAccountResponse(a), nil
}

// GetCompanySettings implements account.Service.
func (s *AccountServiceImpl) GetCompanySettings(ctx context.Context) (account.CompanySettingsResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return account.CompanySettingsResponse{}, err
	}

	settings, err := s.accountRepo.GetSettings(ctx, accountID)
	if err != nil {
		return account.CompanySettingsResponse{}, err
	}

	return s.toSettingsResponse(ctx, settings), nil
}

// UpdateCompanySettings implements account.Service.
func (s *AccountServiceImpl) UpdateCompanySettings(ctx context.Context, req account.UpdateCompanySettingsRequest) (account.CompanySettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return account.CompanySettingsResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return account.CompanySettingsResponse{}, err
	}

	settings, err := s.accountRepo.GetSettings(ctx, accountID)
	if err != nil {
		return account.CompanySettingsResponse{}, err
	}

	if req.BCENumber != nil {
		settings.BCENumber = req.BCENumber
	}
	if req.Verified != nil {
		settings.Verified = *req.Verified
	}
	if req.ValidUntil != nil {
		date, _ := validator.IsValidDate(*req.ValidUntil)
		settings.ValidUntil = &date
	}

	if err := s.accountRepo.UpsertSettings(ctx, settings); err != nil {
		return account.CompanySettingsResponse{}, err
	}

	return s.toSettingsResponse(ctx, settings), nil
}

// UploadLogo implements account.Service.
func (s *AccountServiceImpl) UploadLogo(ctx context.Context, file io.Reader, filename, contentType string) (account.CompanySettingsResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return account.CompanySettingsResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".svg", ".webp":
	default:
		return account.CompanySettingsResponse{}, account.ErrInvalidLogo
	}

	path := fmt.Sprintf("logos/%d/%s%s", accountID, uuid.NewString(), ext)
	storedPath, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return account.CompanySettingsResponse{}, fmt.Errorf("failed to store logo: %w", err)
	}

	settings, err := s.accountRepo.GetSettings(ctx, accountID)
	if err != nil {
		return account.CompanySettingsResponse{}, err
	}

	if settings.LogoPath != nil {
		_ = s.fileStorage.Delete(ctx, *settings.LogoPath)
	}
	settings.LogoPath = &storedPath

	if err := s.accountRepo.UpsertSettings(ctx, settings); err != nil {
		return account.CompanySettingsResponse{}, err
	}

	return s.toSettingsResponse(ctx, settings), nil
}

func (s *AccountServiceImpl) toSettingsResponse(ctx context.Context, settings account.CompanySettings) account.CompanySettingsResponse {
	resp := account.CompanySettingsResponse{
		BCENumber: settings.BCENumber,
		Verified:  settings.Verified,
	}
	if settings.ValidUntil != nil {
		formatted := settings.ValidUntil.Format("2006-01-02")
		resp.ValidUntil = &formatted
	}
	if settings.LogoPath != nil {
		if url, err := s.fileStorage.GetURL(ctx, *settings.LogoPath, 0); err == nil {
			resp.LogoURL = &url
		}
	}
	return resp
}

func toAccountResponse(a account.Account) account.AccountResponse {
	return account.AccountResponse{
		ID:       a.ID,
		Name:     a.Name,
		Locale:   a.Locale,
		Timezone: a.Timezone,
		Address:  a.Address,
	}
}

func accountIDFromContext(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	accountID, ok := claims["account_id"].(float64)
	if !ok || accountID <= 0 {
		return 0, fmt.Errorf("account_id claim is missing or invalid")
	}

	return int64(accountID), nil
}
