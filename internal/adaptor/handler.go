package adaptor

import (
	"net/http"

	"wardrobe-rental/internal/usecase"
	"wardrobe-rental/pkg/apperrors"
	"wardrobe-rental/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Product      *ProductHandler
	Booking      *BookingHandler
	Organization *OrganizationHandler
	Stats        *StatsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Product:      NewProductHandler(service.Product, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Organization: NewOrganizationHandler(service.Organization, log),
		Stats:        NewStatsHandler(service.Stats, service.Export, log),
	}
}

// handleServiceError maps a service error onto the HTTP response by its
// kind. Internal errors get logged with their cause but the response
// body only carries a generic message.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	msg := apperrors.MessageOf(err)

	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, msg, nil)

	case apperrors.KindNotFound:
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, msg)

	case apperrors.KindConflict:
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, msg)

	case apperrors.KindUnauthorized:
		log.Warn(operation+" unauthorized",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, msg)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, msg)
	}
}
