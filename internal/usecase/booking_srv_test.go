package usecase

import (
	"context"
	"testing"
	"time"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/internal/dto/request"
	"wardrobe-rental/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ============================================================================
// MOCK REPOSITORIES
// ============================================================================

type mockProductRepo struct {
	products map[uuid.UUID]*entity.Product
	findErr  error
}

func newMockProductRepo(products ...*entity.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.products[id], nil
}

func (m *mockProductRepo) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProductRepo) Count(ctx context.Context, search string) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	if p, ok := m.products[id]; ok {
		p.Status = status
	}
	return nil
}

func (m *mockProductRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	delete(m.products, id)
	return nil
}

type mockBookingRepo struct {
	bookings    map[uuid.UUID]*entity.Booking
	locks       *mockLockRepo
	nextInvoice int64
	createErr   error
	updateErr   error
}

func newMockBookingRepo(locks *mockLockRepo) *mockBookingRepo {
	return &mockBookingRepo{
		bookings:    make(map[uuid.UUID]*entity.Booking),
		locks:       locks,
		nextInvoice: 1,
	}
}

func (m *mockBookingRepo) CreateWithItems(ctx context.Context, booking *entity.Booking, items []*entity.ReservationLock) error {
	if m.createErr != nil {
		return m.createErr
	}
	booking.InvoiceNumber = m.nextInvoice
	m.nextInvoice++
	m.bookings[booking.ID] = booking
	m.locks.locks = append(m.locks.locks, items...)
	return nil
}

func (m *mockBookingRepo) UpdateWithItems(ctx context.Context, booking *entity.Booking, items []*entity.ReservationLock) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.bookings[booking.ID]; !ok {
		return repository.ErrNotFound
	}
	m.bookings[booking.ID] = booking
	for _, item := range items {
		replaced := false
		for i, existing := range m.locks.locks {
			if existing.ID == item.ID {
				m.locks.locks[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			m.locks.locks = append(m.locks.locks, item)
		}
	}
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return m.bookings[id], nil
}

func (m *mockBookingRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range m.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (m *mockBookingRepo) Count(ctx context.Context, search string) (int64, error) {
	return int64(len(m.bookings)), nil
}

func (m *mockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.bookings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.bookings, id)
	var kept []*entity.ReservationLock
	for _, l := range m.locks.locks {
		if l.BookingID != id {
			kept = append(kept, l)
		}
	}
	m.locks.locks = kept
	return nil
}

type mockLockRepo struct {
	locks     []*entity.ReservationLock
	deleteErr error
}

func (m *mockLockRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.ReservationLock, error) {
	var out []*entity.ReservationLock
	for _, l := range m.locks {
		if l.BookingID == bookingID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockLockRepo) FindActiveByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ReservationLock, error) {
	var out []*entity.ReservationLock
	for _, l := range m.locks {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockLockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, l := range m.locks {
		if l.ID == id {
			m.locks = append(m.locks[:i], m.locks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockLockRepo) FindRevenueRows(ctx context.Context, from, to time.Time) ([]*repository.RevenueRow, error) {
	return nil, nil
}

func (m *mockLockRepo) FindExportRows(ctx context.Context, from, to time.Time) ([]*repository.ExportRow, error) {
	return nil, nil
}

type mockOrgRepo struct {
	org *entity.Organization
}

func (m *mockOrgRepo) Get(ctx context.Context) (*entity.Organization, error) {
	return m.org, nil
}

func (m *mockOrgRepo) Create(ctx context.Context, org *entity.Organization) error {
	m.org = org
	return nil
}

func (m *mockOrgRepo) Update(ctx context.Context, org *entity.Organization) error {
	m.org = org
	return nil
}

// ============================================================================
// FIXTURES
// ============================================================================

func testProduct(name, sku string, price float64) *entity.Product {
	return &entity.Product{
		Base:   entity.Base{ID: uuid.New()},
		Name:   name,
		SKU:    sku,
		Price:  price,
		Status: entity.ProductStatusAvailable,
	}
}

func newTestBookingService(products *mockProductRepo, bookings *mockBookingRepo, locks *mockLockRepo) BookingService {
	repo := &repository.Repository{
		Product:         products,
		Booking:         bookings,
		ReservationLock: locks,
		Organization:    &mockOrgRepo{},
	}
	return NewBookingService(repo, time.UTC, zap.NewNop())
}

// ============================================================================
// TESTS
// ============================================================================

func TestCreateBooking(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	sherwani := testProduct("Sherwani", "SH-001", 300)

	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga, sherwani), bookings, locks)

	resp, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
			{ProductID: sherwani.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-14"},
		},
		Discount:          100,
		AdditionalCharges: 50,
		AdvancePayment:    200,
		SecurityDeposit:   400,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.InvoiceNumber)
	assert.Equal(t, 750.0, resp.RentAmount)
	assert.Equal(t, 600.0, resp.TotalDeposit)
	assert.Equal(t, -150.0, resp.ReturnAmount)
	assert.Equal(t, 150.0, resp.RemainingPayment)
	assert.Len(t, resp.Items, 2)
	assert.Len(t, locks.locks, 2)
	assert.NotEmpty(t, resp.Code)
}

func TestCreateBookingCollectsAllConflicts(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	sherwani := testProduct("Sherwani", "SH-001", 300)
	sherwani.Status = entity.ProductStatusInLaundry

	other := uuid.New()
	locks := &mockLockRepo{locks: []*entity.ReservationLock{{
		BaseSimple:   entity.BaseSimple{ID: uuid.New()},
		BookingID:    other,
		ProductID:    lehenga.ID,
		DeliveryDate: day(t, "2026-03-11"),
		ReturnDate:   day(t, "2026-03-13"),
	}}}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga, sherwani), bookings, locks)

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
			{ProductID: sherwani.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-14"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	// Both rejections show up in one message and nothing was persisted
	assert.Contains(t, err.Error(), "Lehenga")
	assert.Contains(t, err.Error(), "Sherwani")
	assert.Empty(t, bookings.bookings)
	assert.Len(t, locks.locks, 1)
}

func TestCreateBookingDuplicateProductOverlap(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)

	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga), bookings, locks)

	// The same product twice with clashing dates inside one request is
	// an ordinary conflict, not a concurrent-write retry.
	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-12", ReturnDate: "2026-03-14"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "already reserved")
	assert.NotContains(t, err.Error(), "retry")
	assert.Empty(t, bookings.bookings)
	assert.Empty(t, locks.locks)
}

func TestCreateBookingDuplicateProductDisjointWindows(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)

	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga), bookings, locks)

	resp, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-13", ReturnDate: "2026-03-15"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Len(t, locks.locks, 2)
}

func TestCreateBookingProductNotFound(t *testing.T) {
	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(), bookings, locks)

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: uuid.New().String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Empty(t, bookings.bookings)
}

func TestCreateBookingDeliveryAfterReturn(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga), bookings, locks)

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-12", ReturnDate: "2026-03-10"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestInvoiceNumbersIncrease(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga), bookings, locks)

	first, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Customer One",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
		},
	})
	require.NoError(t, err)

	second, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Customer Two",
		PrimaryPhone: "01722222222",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-20", ReturnDate: "2026-03-22"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, first.InvoiceNumber+1, second.InvoiceNumber)
}

func TestUpdateBookingNotesOnly(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga), bookings, locks)

	created, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:    "Farhana Rahman",
		PrimaryPhone:    "01711111111",
		AdvancePayment:  200,
		SecurityDeposit: 100,
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
		},
	})
	require.NoError(t, err)

	notes := "deliver before noon"
	updated, err := svc.UpdateBooking(context.Background(), created.ID, &request.UpdateBookingRequest{
		Notes: &notes,
	})
	require.NoError(t, err)

	// A notes-only patch never touches money or dates
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
	assert.Equal(t, created.RentAmount, updated.RentAmount)
	assert.Equal(t, created.TotalDeposit, updated.TotalDeposit)
	assert.Equal(t, created.ReturnAmount, updated.ReturnAmount)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, created.Items[0].DeliveryDate, updated.Items[0].DeliveryDate)
}

func TestUpdateBookingItemDateFallback(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga), bookings, locks)

	created, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
		},
	})
	require.NoError(t, err)

	// Only the return date moves, delivery falls back to the stored lock
	newReturn := "2026-03-15"
	updated, err := svc.UpdateBooking(context.Background(), created.ID, &request.UpdateBookingRequest{
		Items: []request.UpdateBookingItemRequest{
			{ProductID: lehenga.ID.String(), ReturnDate: &newReturn},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, "2026-03-10", updated.Items[0].DeliveryDate)
	assert.Equal(t, newReturn, updated.Items[0].ReturnDate)
}

func TestUpdateBookingNewItemNeedsDates(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	sherwani := testProduct("Sherwani", "SH-001", 300)
	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga, sherwani), bookings, locks)

	created, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
		},
	})
	require.NoError(t, err)

	// A product without a stored lock has no dates to fall back on
	_, err = svc.UpdateBooking(context.Background(), created.ID, &request.UpdateBookingRequest{
		Items: []request.UpdateBookingItemRequest{
			{ProductID: sherwani.ID.String()},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUpdateBookingOverlapExcludesSelf(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga), bookings, locks)

	created, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
		},
	})
	require.NoError(t, err)

	// Extending within the booking's own window never conflicts with itself
	newReturn := "2026-03-13"
	_, err = svc.UpdateBooking(context.Background(), created.ID, &request.UpdateBookingRequest{
		Items: []request.UpdateBookingItemRequest{
			{ProductID: lehenga.ID.String(), ReturnDate: &newReturn},
		},
	})
	assert.NoError(t, err)
}

func TestDeleteBookingFreesLocks(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga), bookings, locks)

	created, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(context.Background(), created.ID))
	assert.Empty(t, locks.locks)

	// The same dates are immediately bookable again
	_, err = svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Next Customer",
		PrimaryPhone: "01722222222",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
		},
	})
	assert.NoError(t, err)
}

func TestRemoveBookingItem(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga), bookings, locks)

	created, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveBookingItem(context.Background(), created.Items[0].ID))
	assert.Empty(t, locks.locks)

	err = svc.RemoveBookingItem(context.Background(), created.Items[0].ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetReceiptUsesReceiptFormulas(t *testing.T) {
	lehenga := testProduct("Lehenga", "LH-001", 500)
	sherwani := testProduct("Sherwani", "SH-001", 300)
	locks := &mockLockRepo{}
	bookings := newMockBookingRepo(locks)
	svc := newTestBookingService(newMockProductRepo(lehenga, sherwani), bookings, locks)

	created, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName: "Farhana Rahman",
		PrimaryPhone: "01711111111",
		Items: []request.BookingItemRequest{
			{ProductID: lehenga.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-12"},
			{ProductID: sherwani.ID.String(), DeliveryDate: "2026-03-10", ReturnDate: "2026-03-14"},
		},
		Discount:          100,
		AdditionalCharges: 50,
		AdvancePayment:    200,
		SecurityDeposit:   400,
	})
	require.NoError(t, err)

	receipt, err := svc.GetReceipt(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.Code, receipt.Code)
	assert.Equal(t, 800.0, receipt.ProductTotal)
	assert.Equal(t, 1150.0, receipt.Total)
	assert.Equal(t, 950.0, receipt.RemainingPayment)
	assert.Equal(t, 750.0, receipt.ReturnAmount)
	assert.Len(t, receipt.Items, 2)
}
