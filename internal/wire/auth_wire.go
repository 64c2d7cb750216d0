package wire

import (
	"brook-rent/internal/adaptor"
	"brook-rent/pkg/middleware"
	"brook-rent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Auth(config.JWT.Secret, log)).Post("/api/auth/logout", authHandler.Logout)
	r.With(middleware.Auth(config.JWT.Secret, log)).Get("/api/auth/verify", authHandler.Verify)
}
