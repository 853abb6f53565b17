package middleware

import (
	"context"
	"net/http"

	"github.com/george-bobby/prepify-interview-sub001/internal/cache"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
)

const userIDKey contextKey = "user_id"

// TokenBlacklist is the subset of the cache the auth middleware needs.
type TokenBlacklist interface {
	IsTokenBlacklisted(ctx context.Context, token string) bool
}

// RequireAuth validates the bearer token and resolves the acting user into
// the request context. 401 on anything short of a valid, unrevoked token.
func RequireAuth(secret string, blacklist TokenBlacklist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := utils.BearerToken(r)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Code:    "unauthorized",
					Message: "Authentication required",
				})
				return
			}

			claims, err := utils.VerifyToken(token, secret)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Code:    "unauthorized",
					Message: "Invalid or expired token",
				})
				return
			}

			if blacklist != nil && blacklist.IsTokenBlacklisted(r.Context(), token) {
				utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Code:    "unauthorized",
					Message: "Token has been revoked",
				})
				return
			}

			userID, err := utils.GetUserIDFromClaims(claims)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Code:    "unauthorized",
					Message: "Invalid token claims",
				})
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user from the request context.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// WithUserID injects a user into a context; test helper for handlers.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

var _ TokenBlacklist = (*cache.Cache)(nil)
