package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

// SessionMiddleware resolves the player a request belongs to. Tokens are
// issued at user creation and carried in X-Session-Token (or a Bearer
// Authorization header, for clients not using basic auth). The
// middleware never rejects: requests without a valid token fall back to
// the last-created-user rule downstream.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := strings.TrimSpace(r.Header.Get("X-Session-Token"))
		if tokenStr == "" {
			if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
				tokenStr = strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
			}
		}
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := utils.ValidateSessionToken(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionUserID extracts the user id placed in context by
// SessionMiddleware. Zero means no session token was presented.
func SessionUserID(r *http.Request) int {
	if id, ok := r.Context().Value(utils.UserIDKey).(int); ok {
		return id
	}
	return 0
}
