package client

import "context"

// ClientRepository - interface for client_profiles table
type ClientRepository interface {
	Create(ctx context.Context, c ClientProfile) (ClientProfile, error)
	GetByID(ctx context.Context, id, accountID int64) (ClientProfile, error)
	ListByAccount(ctx context.Context, accountID int64) ([]ClientProfile, error)
	Update(ctx context.Context, c ClientProfile) error
	Delete(ctx context.Context, id, accountID int64) error
}
