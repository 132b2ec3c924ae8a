package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	h "eventlisting/internal/delivery/http/helpers"
	"eventlisting/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	h.WriteAPIError(w, http.StatusUnauthorized, h.StatusUnauthorized, "Authentication is required", message, nil)
}

// RequireOwner returns a wrapper for routes under /users/{userId}. It validates the
// Bearer token and rejects the request with 403 unless the token subject equals the
// {userId} path value. A nil verifier disables the check.
func RequireOwner(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if verifier == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				unauthorized(w, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				unauthorized(w, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				unauthorized(w, "missing token")
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "err", err)
				unauthorized(w, "invalid or expired token")
				return
			}
			if r.PathValue("userId") != strconv.FormatInt(userID, 10) {
				h.WriteError(w, r, logger, domain.NewForbiddenError("token does not belong to user %s", r.PathValue("userId")))
				return
			}
			r = r.WithContext(SetUserID(r.Context(), userID))
			next(w, r)
		}
	}
}
