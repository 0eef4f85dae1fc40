package team

import "time"

type Team struct {
	ID        int64
	AccountID int64
	Name      string
	Color     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Loaded relationship
	MemberIDs []int64
}
