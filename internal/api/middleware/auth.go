package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rohits-web03/quick4lio/internal/api/services"
	"github.com/rohits-web03/quick4lio/internal/utils"
)

type contextKey string

const UserIDKey contextKey = "userID"

// TokenCookie carries the session JWT.
const TokenCookie = "token"

// Auth rejects requests without a valid session cookie and stores the
// user id in the request context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(TokenCookie)
			if err != nil {
				unauthorized(w)
				return
			}

			userID, err := services.ParseToken(secret, cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}
			id, err := uuid.Parse(userID)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id stored by Auth.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}

func unauthorized(w http.ResponseWriter) {
	utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
}
