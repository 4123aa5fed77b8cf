package wire

import (
	"wardrobe-rental/internal/adaptor"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	statsHandler *adaptor.StatsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - Create a booking with its line items
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings - List with customer/phone/code search
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/bookings/export - XLSX export for a date range
		// Registered before /{id} so chi never treats "export" as an ID
		r.Get("/export", statsHandler.ExportBookings)

		// GET /api/bookings/{id} - Single booking with items
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PATCH /api/bookings/{id} - Sparse update and item reconciliation
		r.Patch("/{id}", bookingHandler.UpdateBooking)

		// GET /api/bookings/{id}/receipt - E-receipt view
		r.Get("/{id}/receipt", bookingHandler.GetReceipt)

		// DELETE /api/bookings/{id} - Soft delete, frees its locks (admin only)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(repo.User, log))
			r.Delete("/{id}", bookingHandler.DeleteBooking)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// DELETE /api/booking-items/{id} - Drop one line item from a booking
		r.Delete("/api/booking-items/{id}", bookingHandler.RemoveBookingItem)
	})
}
