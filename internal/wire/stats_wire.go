package wire

import (
	"wardrobe-rental/internal/adaptor"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStats(
	r chi.Router,
	statsHandler *adaptor.StatsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/stats/weekly - Monday-anchored revenue buckets
		r.Get("/api/stats/weekly", statsHandler.GetWeeklyRevenue)
	})
}
