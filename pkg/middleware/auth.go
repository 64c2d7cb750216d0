package middleware

import (
	"errors"
	"net/http"
	"strings"

	"brook-rent/internal/data/entity"
	"brook-rent/internal/data/repository"
	"brook-rent/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer token and puts the caller identity into
// the request context. The identity lives only for this request;
// nothing is cached across requests.
func Auth(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(parts[1], secret)
			if err != nil {
				// Expired vs malformed/tampered only matters for logs,
				// the caller sees one unauthorized outcome
				if errors.Is(err, utils.ErrTokenExpired) {
					logger.Warn("Expired token", zap.String("path", r.URL.Path))
				} else {
					logger.Warn("Invalid token", zap.Error(err), zap.String("path", r.URL.Path))
				}
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Lister gates listing creation to lister accounts. The role is
// re-fetched from the store per request, never taken from the token.
func Lister(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get user ID from context (set by Auth)
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Get user from repo
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Lister check: failed to get user",
					zap.Error(err), zap.Int64("user_id", userID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// 3. Check role
			if user == nil || user.Role != entity.RoleLister {
				logger.Warn("Lister check: non-lister access attempt",
					zap.Int64("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Lister account required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
