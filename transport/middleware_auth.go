package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/houzze/houzze-api/application/user"
	"github.com/houzze/houzze-api/constant"
	"github.com/houzze/houzze-api/utils/errors"
)

// AuthMiddleware returns a middleware that validates bearer tokens using UserApp.
// Public endpoints pass through untouched; protected ones are rejected with 401
// before any handler logic runs.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via UserApp
			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed userID into context
			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRoute defines which endpoints need no bearer token. /internal/ routes
// carry their own static-key guard.
func isPublicRoute(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	switch path {
	case "/api/users/register", "/api/users/login", "/api/users/logout":
		return true
	}
	// Browsing and reading vacancies is open to anyone
	if method == http.MethodGet && strings.HasPrefix(path, "/api/vacancies") {
		return true
	}

	return false
}
