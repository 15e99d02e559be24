package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkfolio-promos/internal/core/domain"
)

// SessionStore implements port.SessionStore over the sessions table the
// identity collaborator writes to.
type SessionStore struct {
	pool *pgxpool.Pool
}

// NewSessionStore returns a new store instance.
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

// FindByToken returns the session for a bearer token, or nil when the
// token is unknown.
func (s *SessionStore) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	var (
		sess       domain.Session
		businessID *string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT token, user_id, business_id, expires_at FROM sessions WHERE token = $1`, token).
		Scan(&sess.Token, &sess.UserID, &businessID, &sess.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if businessID != nil {
		sess.BusinessID = *businessID
	}
	return &sess, nil
}
