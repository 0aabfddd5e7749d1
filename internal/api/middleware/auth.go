package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"

	// Identity headers set by the API gateway after token verification.
	headerUserID = "X-User-ID"
	headerRole   = "X-User-Role"
)

// Auth extracts the gateway-verified identity headers into the request
// context. Requests without a numeric X-User-ID are rejected; a missing or
// unknown X-User-Role downgrades to the regular user role.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "missing or invalid X-User-ID header")
			return
		}

		role, err := domain.ParseActor(r.Header.Get(headerRole))
		if err != nil {
			role = domain.ActorUser
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFrom returns the authenticated user id from the context.
func UserIDFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// RoleFrom returns the authenticated role from the context, defaulting to
// the regular user role.
func RoleFrom(ctx context.Context) domain.Actor {
	if role, ok := ctx.Value(roleKey).(domain.Actor); ok {
		return role
	}
	return domain.ActorUser
}
