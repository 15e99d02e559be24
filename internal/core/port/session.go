package port

import (
	"context"

	"linkfolio-promos/internal/core/domain"
)

// SessionStore is the minimal surface of the identity collaborator: it
// resolves a bearer token to a session. Validity (expiry) is checked by
// the HTTP middleware.
type SessionStore interface {
	// FindByToken returns the session or nil when the token is unknown.
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
}
