package wire

import (
	"wardrobe-rental/internal/adaptor"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/products", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/products - Add a catalog item
		r.Post("/", productHandler.CreateProduct)

		// GET /api/products - List catalog with search and pagination
		r.Get("/", productHandler.GetProducts)

		// GET /api/products/{id} - Single product
		r.Get("/{id}", productHandler.GetProductByID)

		// PATCH /api/products/{id} - Sparse update
		r.Patch("/{id}", productHandler.UpdateProduct)

		// PUT /api/products/{id}/status - Availability toggle
		r.Put("/{id}/status", productHandler.UpdateProductStatus)

		// POST /api/products/{id}/image - Attach product photo
		r.Post("/{id}/image", productHandler.UploadProductImage)

		// DELETE /api/products/{id} - Soft delete (admin only)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(repo.User, log))
			r.Delete("/{id}", productHandler.DeleteProduct)
		})
	})
}
