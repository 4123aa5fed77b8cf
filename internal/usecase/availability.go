package usecase

import (
	"time"

	"wardrobe-rental/internal/data/entity"

	"github.com/google/uuid"
)

// RequestedInterval is one product's requested rental window, dates
// inclusive on both ends.
type RequestedInterval struct {
	ProductID    uuid.UUID
	DeliveryDate time.Time
	ReturnDate   time.Time
}

// Conflict describes why one requested product was rejected, either an
// unavailable status or a date overlap with an existing lock.
type Conflict struct {
	ProductID   uuid.UUID
	ProductName string
	Status      entity.ProductStatus
	DateClash   bool
}

// FindOverlap returns the first lock in locks whose interval overlaps the
// requested one, skipping locks that belong to excludeBooking (a booking
// being updated never conflicts with its own lock for the product).
func FindOverlap(locks []*entity.ReservationLock, req RequestedInterval, excludeBooking uuid.UUID) *entity.ReservationLock {
	for _, lock := range locks {
		if excludeBooking != uuid.Nil && lock.BookingID == excludeBooking {
			continue
		}
		if lock.Overlaps(req.DeliveryDate, req.ReturnDate) {
			return lock
		}
	}
	return nil
}

// CheckProduct evaluates one requested interval against a product's
// status and existing locks. A nil result means the product is bookable.
func CheckProduct(product *entity.Product, locks []*entity.ReservationLock, req RequestedInterval, excludeBooking uuid.UUID) *Conflict {
	if product.Status != entity.ProductStatusAvailable {
		return &Conflict{
			ProductID:   product.ID,
			ProductName: product.Name,
			Status:      product.Status,
		}
	}

	if lock := FindOverlap(locks, req, excludeBooking); lock != nil {
		return &Conflict{
			ProductID:   product.ID,
			ProductName: product.Name,
			Status:      product.Status,
			DateClash:   true,
		}
	}

	return nil
}
