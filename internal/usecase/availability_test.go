package usecase

import (
	"testing"
	"time"

	"wardrobe-rental/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func lock(t *testing.T, bookingID uuid.UUID, delivery, ret string) *entity.ReservationLock {
	t.Helper()
	return &entity.ReservationLock{
		BaseSimple:   entity.BaseSimple{ID: uuid.New()},
		BookingID:    bookingID,
		ProductID:    uuid.New(),
		DeliveryDate: day(t, delivery),
		ReturnDate:   day(t, ret),
	}
}

func TestFindOverlap(t *testing.T) {
	bookingID := uuid.New()
	existing := []*entity.ReservationLock{lock(t, bookingID, "2026-03-10", "2026-03-14")}

	tests := []struct {
		name     string
		delivery string
		ret      string
		overlaps bool
	}{
		{"fully inside", "2026-03-11", "2026-03-13", true},
		{"fully covering", "2026-03-01", "2026-03-31", true},
		{"same interval", "2026-03-10", "2026-03-14", true},
		{"touching at delivery", "2026-03-05", "2026-03-10", true},
		{"touching at return", "2026-03-14", "2026-03-20", true},
		{"single day inside", "2026-03-12", "2026-03-12", true},
		{"day after return", "2026-03-15", "2026-03-20", false},
		{"day before delivery", "2026-03-01", "2026-03-09", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RequestedInterval{
				DeliveryDate: day(t, tt.delivery),
				ReturnDate:   day(t, tt.ret),
			}
			found := FindOverlap(existing, req, uuid.Nil)
			if tt.overlaps {
				assert.NotNil(t, found)
			} else {
				assert.Nil(t, found)
			}
		})
	}
}

func TestFindOverlapExcludesOwnBooking(t *testing.T) {
	own := uuid.New()
	other := uuid.New()
	locks := []*entity.ReservationLock{
		lock(t, own, "2026-03-10", "2026-03-14"),
	}

	req := RequestedInterval{
		DeliveryDate: day(t, "2026-03-12"),
		ReturnDate:   day(t, "2026-03-16"),
	}

	// Updating a booking never collides with its own lock
	assert.Nil(t, FindOverlap(locks, req, own))

	// But another booking's lock on the same dates still does
	locks = append(locks, lock(t, other, "2026-03-15", "2026-03-18"))
	found := FindOverlap(locks, req, own)
	require.NotNil(t, found)
	assert.Equal(t, other, found.BookingID)
}

func TestCheckProductStatus(t *testing.T) {
	req := RequestedInterval{
		DeliveryDate: day(t, "2026-03-01"),
		ReturnDate:   day(t, "2026-03-03"),
	}

	product := &entity.Product{
		Base:   entity.Base{ID: uuid.New()},
		Name:   "Sherwani",
		Status: entity.ProductStatusInLaundry,
	}

	conflict := CheckProduct(product, nil, req, uuid.Nil)
	require.NotNil(t, conflict)
	assert.False(t, conflict.DateClash)
	assert.Equal(t, entity.ProductStatusInLaundry, conflict.Status)
}

func TestCheckProductDateClash(t *testing.T) {
	req := RequestedInterval{
		DeliveryDate: day(t, "2026-03-01"),
		ReturnDate:   day(t, "2026-03-03"),
	}

	product := &entity.Product{
		Base:   entity.Base{ID: uuid.New()},
		Name:   "Sherwani",
		Status: entity.ProductStatusAvailable,
	}
	locks := []*entity.ReservationLock{lock(t, uuid.New(), "2026-03-03", "2026-03-05")}

	conflict := CheckProduct(product, locks, req, uuid.Nil)
	require.NotNil(t, conflict)
	assert.True(t, conflict.DateClash)
	assert.Equal(t, "Sherwani", conflict.ProductName)
}

func TestCheckProductAvailable(t *testing.T) {
	req := RequestedInterval{
		DeliveryDate: day(t, "2026-03-01"),
		ReturnDate:   day(t, "2026-03-03"),
	}

	product := &entity.Product{
		Base:   entity.Base{ID: uuid.New()},
		Status: entity.ProductStatusAvailable,
	}
	locks := []*entity.ReservationLock{lock(t, uuid.New(), "2026-03-04", "2026-03-06")}

	assert.Nil(t, CheckProduct(product, locks, req, uuid.Nil))
}
