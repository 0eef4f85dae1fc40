package account

import "context"

// AccountRepository - interface for accounts and company_settings tables
type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByID(ctx context.Context, id int64) (Account, error)
	Update(ctx context.Context, account Account) error

	GetSettings(ctx context.Context, accountID int64) (CompanySettings, error)
	UpsertSettings(ctx context.Context, settings CompanySettings) error
}
