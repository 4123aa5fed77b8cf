package repository

import (
	"context"
	"fmt"
	"time"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RevenueRow is one lock joined with its product price and booking payment
// info, the input of the weekly revenue aggregation.
type RevenueRow struct {
	BookingID            uuid.UUID
	DeliveryDate         time.Time
	Price                float64
	AdvancePaymentMethod *string
}

// ExportRow is one booking line item flattened for the XLSX export.
type ExportRow struct {
	InvoiceNumber  int64
	Code           string
	CustomerName   string
	PrimaryPhone   string
	ProductName    string
	ProductSKU     string
	Price          float64
	DeliveryDate   time.Time
	ReturnDate     time.Time
	RentAmount     float64
	TotalDeposit   float64
	ReturnAmount   float64
	AdvancePayment float64
}

type ReservationLockRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.ReservationLock, error)
	// FindActiveByProduct returns every lock on the product whose parent
	// booking is not deleted. The comparison set of the availability check.
	FindActiveByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ReservationLock, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Reporting queries
	FindRevenueRows(ctx context.Context, from, to time.Time) ([]*RevenueRow, error)
	FindExportRows(ctx context.Context, from, to time.Time) ([]*ExportRow, error)
}

type reservationLockRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationLockRepository(db database.PgxIface, log *zap.Logger) ReservationLockRepository {
	return &reservationLockRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation_lock")),
	}
}

const lockColumns = `id, booking_id, product_id, delivery_date, return_date, created_at`

func scanLock(row pgx.Row) (*entity.ReservationLock, error) {
	var l entity.ReservationLock
	err := row.Scan(
		&l.ID,
		&l.BookingID,
		&l.ProductID,
		&l.DeliveryDate,
		&l.ReturnDate,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *reservationLockRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.ReservationLock, error) {
	query := `
		SELECT ` + lockColumns + `
		FROM reservation_locks
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find locks by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find locks by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	return collectLocks(rows, r.log)
}

func (r *reservationLockRepository) FindActiveByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ReservationLock, error) {
	query := `
		SELECT l.id, l.booking_id, l.product_id, l.delivery_date, l.return_date, l.created_at
		FROM reservation_locks l
		INNER JOIN bookings b ON l.booking_id = b.id
		WHERE l.product_id = $1 AND b.deleted_at IS NULL
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		r.log.Error("Failed to find locks by product ID",
			zap.Error(err),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("find locks by product ID %s: %w", productID.String(), err)
	}
	defer rows.Close()

	return collectLocks(rows, r.log)
}

func (r *reservationLockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservation_locks WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete lock",
			zap.Error(err),
			zap.String("lock_id", id.String()),
		)
		return fmt.Errorf("delete lock %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lock %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Reservation lock deleted", zap.String("lock_id", id.String()))
	return nil
}

func (r *reservationLockRepository) FindRevenueRows(ctx context.Context, from, to time.Time) ([]*RevenueRow, error) {
	query := `
		SELECT l.booking_id, l.delivery_date, p.price, b.advance_payment_method
		FROM reservation_locks l
		INNER JOIN bookings b ON l.booking_id = b.id
		INNER JOIN products p ON l.product_id = p.id
		WHERE b.deleted_at IS NULL
		  AND l.delivery_date >= $1 AND l.delivery_date <= $2
		ORDER BY l.delivery_date
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to query revenue rows",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("query revenue rows: %w", err)
	}
	defer rows.Close()

	var result []*RevenueRow
	for rows.Next() {
		var row RevenueRow
		if err := rows.Scan(&row.BookingID, &row.DeliveryDate, &row.Price, &row.AdvancePaymentMethod); err != nil {
			r.log.Error("Failed to scan revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		result = append(result, &row)
	}

	return result, nil
}

func (r *reservationLockRepository) FindExportRows(ctx context.Context, from, to time.Time) ([]*ExportRow, error) {
	query := `
		SELECT b.invoice_number, b.code, b.customer_name, b.primary_phone,
		       p.name, p.sku, p.price, l.delivery_date, l.return_date,
		       b.rent_amount, b.total_deposit, b.return_amount, b.advance_payment
		FROM reservation_locks l
		INNER JOIN bookings b ON l.booking_id = b.id
		INNER JOIN products p ON l.product_id = p.id
		WHERE b.deleted_at IS NULL
		  AND l.delivery_date >= $1 AND l.delivery_date <= $2
		ORDER BY b.invoice_number, l.delivery_date
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to query export rows",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("query export rows: %w", err)
	}
	defer rows.Close()

	var result []*ExportRow
	for rows.Next() {
		var row ExportRow
		err := rows.Scan(
			&row.InvoiceNumber,
			&row.Code,
			&row.CustomerName,
			&row.PrimaryPhone,
			&row.ProductName,
			&row.ProductSKU,
			&row.Price,
			&row.DeliveryDate,
			&row.ReturnDate,
			&row.RentAmount,
			&row.TotalDeposit,
			&row.ReturnAmount,
			&row.AdvancePayment,
		)
		if err != nil {
			r.log.Error("Failed to scan export row", zap.Error(err))
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		result = append(result, &row)
	}

	return result, nil
}

func collectLocks(rows pgx.Rows, log *zap.Logger) ([]*entity.ReservationLock, error) {
	var locks []*entity.ReservationLock
	for rows.Next() {
		lock, err := scanLock(rows)
		if err != nil {
			log.Error("Failed to scan lock row", zap.Error(err))
			return nil, fmt.Errorf("scan lock row: %w", err)
		}
		locks = append(locks, lock)
	}
	return locks, nil
}
