package client

import "time"

// ClientProfile enriches a client name found on projects with contact
// details. Clients exist implicitly through project.client_name; the
// profile is optional.
type ClientProfile struct {
	ID           int64
	AccountID    int64
	Name         string
	Slug         string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	Address      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
