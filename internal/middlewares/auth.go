package middlewares

import (
	"context"
	"net/http"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/jwt"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (string, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores the authenticated user identifier in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = jwt.SetUserIDToContext(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
