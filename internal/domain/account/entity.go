package account

import "time"

// Account is the tenant boundary. Every worker, project, team and time
// entry carries its account id and every query is scoped by it.
type Account struct {
	ID        int64
	Name      string
	Locale    string
	Timezone  string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanySettings holds the legal identity used by worker compliance:
// a worker roster is only compliant when the company itself is verified
// and its registration has not lapsed.
type CompanySettings struct {
	AccountID  int64
	BCENumber  *string
	Verified   bool
	ValidUntil *time.Time
	LogoPath   *string
	UpdatedAt  time.Time
}

// Valid reports whether the settings pass the compliance gate at the
// given instant.
func (s CompanySettings) Valid(now time.Time) bool {
	if !s.Verified {
		return false
	}
	if s.ValidUntil != nil && now.After(*s.ValidUntil) {
		return false
	}
	return true
}
