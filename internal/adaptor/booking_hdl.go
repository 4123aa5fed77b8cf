package adaptor

import (
	"encoding/json"
	"net/http"

	"wardrobe-rental/internal/dto/request"
	"wardrobe-rental/internal/usecase"
	"wardrobe-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBookings handles GET /api/bookings (protected)
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	req := paginatedRequest(r)

	bookings, err := h.service.GetBookings(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateBooking handles PATCH /api/bookings/{id} (protected)
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// DeleteBooking handles DELETE /api/bookings/{id} (admin)
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	if err := h.service.DeleteBooking(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// RemoveBookingItem handles DELETE /api/booking-items/{id} (protected)
func (h *BookingHandler) RemoveBookingItem(w http.ResponseWriter, r *http.Request) {
	lockID := chi.URLParam(r, "id")

	if err := h.service.RemoveBookingItem(r.Context(), lockID); err != nil {
		handleServiceError(w, h.log, err, "remove booking item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetReceipt handles GET /api/bookings/{id}/receipt (protected)
func (h *BookingHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	receipt, err := h.service.GetReceipt(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get receipt")
		return
	}

	utils.ResponseSuccess(w, "success", receipt)
}
