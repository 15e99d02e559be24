package domain

import "time"

// Business is the paying side of a proposal. BudgetCents is the
// authoritative ceiling for promotional spend.
type Business struct {
	ID          string
	Name        string
	BudgetCents int64
	CreatedAt   time.Time
}

// Creator is referenced, not owned, by this service. The creator product
// manages the full profile.
type Creator struct {
	ID     string
	UserID string
}

// Session is the minimal slice of the identity collaborator this service
// consumes: a bearer token resolved to a user and, for business accounts,
// the business it acts for.
type Session struct {
	Token      string
	UserID     string
	BusinessID string
	ExpiresAt  time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
