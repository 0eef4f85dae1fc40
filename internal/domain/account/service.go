package account

import (
	"context"
	"io"
)

type Service interface {
	GetProfile(ctx context.Context) (AccountResponse, error)
	UpdateProfile(ctx context.Context, req UpdateAccountRequest) (AccountResponse, error)

	GetCompanySettings(ctx context.Context) (CompanySettingsResponse, error)
	UpdateCompanySettings(ctx context.Context, req UpdateCompanySettingsRequest) (CompanySettingsResponse, error)
	UploadLogo(ctx context.Context, file io.Reader, filename, contentType string) (CompanySettingsResponse, error)
}
