package repository

import (
	"wardrobe-rental/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User            UserRepository
	Session         SessionRepository
	Product         ProductRepository
	Booking         BookingRepository
	ReservationLock ReservationLockRepository
	Organization    OrganizationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:            NewUserRepository(db, log),
		Session:         NewSessionRepository(db, log),
		Product:         NewProductRepository(db, log),
		Booking:         NewBookingRepository(db, log),
		ReservationLock: NewReservationLockRepository(db, log),
		Organization:    NewOrganizationRepository(db, log),
	}
}
