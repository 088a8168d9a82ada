package auth

import (
	"context"
	"net/http"

	"github.com/Bvqlz/Todo/apperror"
	"github.com/Bvqlz/Todo/session"
)

// ContextKey is a custom type for context keys to avoid collisions with keys
// set by other packages.
type ContextKey string

const (
	// UserIDKey is the key under which the authenticated user's ID is stored
	// in the request context.
	UserIDKey ContextKey = "userID"
	// SessionIDKey is the key under which the resolved session identifier is
	// stored, so downstream handlers can invalidate the session they came in on.
	SessionIDKey ContextKey = "sessionID"
)

// SessionAuth returns middleware that resolves the session cookie into a user
// identity. The request short-circuits with 401 when the cookie is missing or
// the identifier no longer maps to a user; a stale cookie is cleared so the
// browser stops resending it. A store miss is a normal outcome of the lookup,
// it only becomes an auth failure here at the route boundary.
func SessionAuth(store *session.Store) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				WriteError(w, r, apperror.NewAuthError("authentication required", nil))
				return
			}

			userID, ok := store.Get(cookie.Value)
			if !ok {
				ClearSessionCookie(w)
				WriteError(w, r, apperror.NewAuthError("session expired or invalid, log in again", nil))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, SessionIDKey, cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext retrieves the authenticated user's ID from the request
// context. Returns 0 and false if it is absent.
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

// GetSessionIDFromContext retrieves the session identifier the request was
// authenticated with.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}
