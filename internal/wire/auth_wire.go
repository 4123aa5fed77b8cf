package wire

import (
	"wardrobe-rental/internal/adaptor"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/register - Create staff account
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Exchange credentials for a session token
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/logout - Revoke the current session
		r.Post("/api/logout", authHandler.Logout)
	})
}
