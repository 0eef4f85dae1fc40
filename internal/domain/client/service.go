package client

import "context"

type Service interface {
	// ListClients groups the account's projects by client name and merges
	// in profiles where they exist.
	ListClients(ctx context.Context) ([]ClientResponse, error)
	GetClient(ctx context.Context, slug string) (ClientResponse, error)

	CreateClient(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	UpdateClient(ctx context.Context, req UpdateClientRequest) (ClientResponse, error)
	DeleteClient(ctx context.Context, id int64) error
}
