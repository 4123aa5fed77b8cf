package wire

import (
	"wardrobe-rental/internal/adaptor"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrganization(
	r chi.Router,
	orgHandler *adaptor.OrganizationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/organization", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/organization - Business profile for receipts
		r.Get("/", orgHandler.GetOrganization)

		// Profile edits are admin only
		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(repo.User, log))

			// PUT /api/organization - Upsert the profile
			r.Put("/", orgHandler.UpdateOrganization)

			// POST /api/organization/logo - Attach the receipt logo
			r.Post("/logo", orgHandler.UploadLogo)
		})
	})
}
