package httpadapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"linkfolio-promos/internal/core/domain"
)

type contextKey struct{ name string }

var sessionKey = &contextKey{"session"}

// withSession authenticates the request. The token comes from an
// Authorization bearer header or the session cookie; unknown or expired
// tokens are rejected with 401 before any handler runs.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.respondError(w, errUnauthorized)
			return
		}
		sess, err := h.sessions.FindByToken(r.Context(), token)
		if err != nil {
			h.respondError(w, err)
			return
		}
		if sess == nil || sess.Expired(time.Now().UTC()) {
			h.respondError(w, errUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return token
		}
		return ""
	}
	if c, err := r.Cookie("session"); err == nil {
		return c.Value
	}
	return ""
}

// sessionFrom returns the authenticated session placed by withSession.
func sessionFrom(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionKey).(*domain.Session)
	return sess
}
