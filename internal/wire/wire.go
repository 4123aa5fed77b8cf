package wire

import (
	"net/http"
	"time"

	"wardrobe-rental/internal/adaptor"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/internal/usecase"
	"wardrobe-rental/pkg/middleware"
	"wardrobe-rental/pkg/storage"
	"wardrobe-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(repo *repository.Repository, config *utils.Config, files storage.FileStore, loc *time.Location, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, files, loc, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireProduct(r, handler.Product, repo, logger)
	wireBooking(r, handler.Booking, handler.Stats, repo, logger)
	wireOrganization(r, handler.Organization, repo, logger)
	wireStats(r, handler.Stats, repo, logger)

	// Uploaded images are served straight off disk
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.Storage.Path)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
