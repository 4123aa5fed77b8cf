package usecase

import (
	"time"

	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/pkg/storage"
	"wardrobe-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Product      ProductService
	Booking      BookingService
	Organization OrganizationService
	Stats        StatsService
	Export       ExportService
}

func NewService(repo *repository.Repository, config *utils.Config, files storage.FileStore, loc *time.Location, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config.Session.ExpiryHours, log),
		Product:      NewProductService(repo, files, log),
		Booking:      NewBookingService(repo, loc, log),
		Organization: NewOrganizationService(repo, files, loc, log),
		Stats:        NewStatsService(repo, loc, log),
		Export:       NewExportService(repo, loc, log),
	}
}
