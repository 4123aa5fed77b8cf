package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationLock binds one booking to one product for the inclusive
// interval [DeliveryDate, ReturnDate]. For a given product no two active
// locks may overlap.
type ReservationLock struct {
	BaseSimple
	BookingID    uuid.UUID `db:"booking_id"`
	ProductID    uuid.UUID `db:"product_id"`
	DeliveryDate time.Time `db:"delivery_date"`
	ReturnDate   time.Time `db:"return_date"`
}

// Overlaps reports whether the lock's interval intersects [delivery, return]
// under inclusive semantics: touching endpoints count as a conflict, a new
// delivery the day after an existing return does not.
func (l *ReservationLock) Overlaps(delivery, ret time.Time) bool {
	return !l.DeliveryDate.After(ret) && !l.ReturnDate.Before(delivery)
}
