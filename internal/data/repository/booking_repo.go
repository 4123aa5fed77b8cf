package repository

import (
	"context"
	"fmt"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateWithItems assigns the next invoice number and persists the
	// booking plus one reservation lock per item in a single transaction.
	CreateWithItems(ctx context.Context, booking *entity.Booking, items []*entity.ReservationLock) error
	// UpdateWithItems persists booking field changes and upserts the given
	// locks (existing lock IDs update in place, new IDs insert) atomically.
	UpdateWithItems(ctx context.Context, booking *entity.Booking, items []*entity.ReservationLock) error
	// Delete removes all of the booking's locks and soft-deletes the
	// booking row in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, search string) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, code, invoice_number, customer_name, primary_phone, secondary_phone,
	notes, rent_amount, total_deposit, security_deposit, return_amount, advance_payment,
	discount, discount_type, additional_charges, rental_type,
	advance_payment_method, delivery_payment_method, return_payment_method,
	created_at, updated_at, deleted_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.Code,
		&b.InvoiceNumber,
		&b.CustomerName,
		&b.PrimaryPhone,
		&b.SecondaryPhone,
		&b.Notes,
		&b.RentAmount,
		&b.TotalDeposit,
		&b.SecurityDeposit,
		&b.ReturnAmount,
		&b.AdvancePayment,
		&b.Discount,
		&b.DiscountType,
		&b.AdditionalCharges,
		&b.RentalType,
		&b.AdvancePaymentMethod,
		&b.DeliveryPaymentMethod,
		&b.ReturnPaymentMethod,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) CreateWithItems(ctx context.Context, booking *entity.Booking, items []*entity.ReservationLock) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin create booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Invoice number = previous max + 1, computed inside the transaction.
	// The unique index on invoice_number turns a concurrent duplicate into
	// a retryable conflict instead of silent corruption.
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(invoice_number), 0) + 1 FROM bookings`,
	).Scan(&booking.InvoiceNumber)
	if err != nil {
		r.log.Error("Failed to compute invoice number", zap.Error(err))
		return fmt.Errorf("compute invoice number: %w", err)
	}

	insertBooking := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	_, err = tx.Exec(ctx, insertBooking,
		booking.ID,
		booking.Code,
		booking.InvoiceNumber,
		booking.CustomerName,
		booking.PrimaryPhone,
		booking.SecondaryPhone,
		booking.Notes,
		booking.RentAmount,
		booking.TotalDeposit,
		booking.SecurityDeposit,
		booking.ReturnAmount,
		booking.AdvancePayment,
		booking.Discount,
		booking.DiscountType,
		booking.AdditionalCharges,
		booking.RentalType,
		booking.AdvancePaymentMethod,
		booking.DeliveryPaymentMethod,
		booking.ReturnPaymentMethod,
		booking.CreatedAt,
		booking.UpdatedAt,
		booking.DeletedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("code", booking.Code),
		)
		return fmt.Errorf("insert booking %s: %w", booking.Code, err)
	}

	if err := insertLocks(ctx, tx, items); err != nil {
		r.log.Error("Failed to insert reservation locks",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) UpdateWithItems(ctx context.Context, booking *entity.Booking, items []*entity.ReservationLock) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin update booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	updateBooking := `
		UPDATE bookings
		SET customer_name = $2, primary_phone = $3, secondary_phone = $4, notes = $5,
		    rent_amount = $6, total_deposit = $7, security_deposit = $8, return_amount = $9,
		    advance_payment = $10, discount = $11, discount_type = $12, additional_charges = $13,
		    rental_type = $14, advance_payment_method = $15, delivery_payment_method = $16,
		    return_payment_method = $17, updated_at = $18
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := tx.Exec(ctx, updateBooking,
		booking.ID,
		booking.CustomerName,
		booking.PrimaryPhone,
		booking.SecondaryPhone,
		booking.Notes,
		booking.RentAmount,
		booking.TotalDeposit,
		booking.SecurityDeposit,
		booking.ReturnAmount,
		booking.AdvancePayment,
		booking.Discount,
		booking.DiscountType,
		booking.AdditionalCharges,
		booking.RentalType,
		booking.AdvancePaymentMethod,
		booking.DeliveryPaymentMethod,
		booking.ReturnPaymentMethod,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", booking.ID.String(), ErrNotFound)
	}

	upsertLock := `
		INSERT INTO reservation_locks (id, booking_id, product_id, delivery_date, return_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET delivery_date = EXCLUDED.delivery_date, return_date = EXCLUDED.return_date
	`

	for _, item := range items {
		_, err := tx.Exec(ctx, upsertLock,
			item.ID,
			item.BookingID,
			item.ProductID,
			item.DeliveryDate,
			item.ReturnDate,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to upsert reservation lock",
				zap.Error(err),
				zap.String("booking_id", item.BookingID.String()),
				zap.String("product_id", item.ProductID.String()),
			)
			return fmt.Errorf("upsert reservation lock for product %s: %w", item.ProductID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin delete booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Locks go first so the products are immediately bookable again.
	if _, err := tx.Exec(ctx, `DELETE FROM reservation_locks WHERE booking_id = $1`, id); err != nil {
		r.log.Error("Failed to delete reservation locks",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete reservation locks for booking %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx,
		`UPDATE bookings SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete booking: %w", err)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1 AND deleted_at IS NULL
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) List(ctx context.Context, search string, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR customer_name ILIKE '%' || $1 || '%'
		       OR primary_phone LIKE '%' || $1 || '%' OR code ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR customer_name ILIKE '%' || $1 || '%'
		       OR primary_phone LIKE '%' || $1 || '%' OR code ILIKE '%' || $1 || '%')
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, search).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func insertLocks(ctx context.Context, tx pgx.Tx, items []*entity.ReservationLock) error {
	query := `
		INSERT INTO reservation_locks (id, booking_id, product_id, delivery_date, return_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, item := range items {
		_, err := tx.Exec(ctx, query,
			item.ID,
			item.BookingID,
			item.ProductID,
			item.DeliveryDate,
			item.ReturnDate,
			item.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert reservation lock for product %s: %w", item.ProductID.String(), err)
		}
	}

	return nil
}
