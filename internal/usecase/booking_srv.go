package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/internal/dto/request"
	"wardrobe-rental/internal/dto/response"
	"wardrobe-rental/pkg/apperrors"
	"wardrobe-rental/pkg/database"
	"wardrobe-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	RemoveBookingItem(ctx context.Context, lockID string) error
	GetReceipt(ctx context.Context, bookingID string) (*response.ReceiptResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	loc  *time.Location
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, loc *time.Location, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		loc:  loc,
		log:  log.With(zap.String("service", "booking")),
	}
}

// checkedItem is one requested line item after validation: the resolved
// product plus the parsed interval.
type checkedItem struct {
	product  *entity.Product
	interval RequestedInterval
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	items := make([]checkedItem, 0, len(req.Items))
	var conflicts []*Conflict

	// Intervals accepted earlier in the batch also guard the remaining
	// items, so a request that repeats a product with clashing dates
	// reports a normal conflict instead of tripping the DB constraint.
	pending := make(map[uuid.UUID][]*entity.ReservationLock)

	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, apperrors.Validation("invalid product ID format %s", item.ProductID)
		}

		interval, err := s.parseInterval(item.DeliveryDate, item.ReturnDate)
		if err != nil {
			return nil, err
		}
		interval.ProductID = productID

		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			return nil, apperrors.Internal("check product", err)
		}
		if product == nil {
			return nil, apperrors.NotFound("product %s not found", item.ProductID)
		}

		locks, err := s.repo.ReservationLock.FindActiveByProduct(ctx, productID)
		if err != nil {
			return nil, apperrors.Internal("check product availability", err)
		}
		locks = append(locks, pending[productID]...)

		// Every conflicting product is collected so the caller sees the
		// whole batch verdict in one response, not just the first failure.
		if conflict := CheckProduct(product, locks, interval, uuid.Nil); conflict != nil {
			conflicts = append(conflicts, conflict)
			continue
		}

		pending[productID] = append(pending[productID], &entity.ReservationLock{
			ProductID:    productID,
			DeliveryDate: interval.DeliveryDate,
			ReturnDate:   interval.ReturnDate,
		})
		items = append(items, checkedItem{product: product, interval: interval})
	}

	if len(conflicts) > 0 {
		return nil, apperrors.Conflict("%s", conflictMessage(conflicts))
	}

	prices := make([]float64, len(items))
	for i, item := range items {
		prices[i] = item.product.Price
	}

	totals := ComputeBookingTotals(FinancialInput{
		Prices:            prices,
		Discount:          req.Discount,
		AdditionalCharges: req.AdditionalCharges,
		AdvancePayment:    req.AdvancePayment,
		SecurityDeposit:   req.SecurityDeposit,
	})

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:                 utils.GenerateBookingCode(req.CustomerName),
		CustomerName:         req.CustomerName,
		PrimaryPhone:         req.PrimaryPhone,
		SecondaryPhone:       req.SecondaryPhone,
		Notes:                req.Notes,
		RentAmount:           totals.RentAmount,
		TotalDeposit:         totals.TotalDeposit,
		SecurityDeposit:      req.SecurityDeposit,
		ReturnAmount:         totals.ReturnAmount,
		AdvancePayment:       req.AdvancePayment,
		Discount:             req.Discount,
		DiscountType:         req.DiscountType,
		AdditionalCharges:    req.AdditionalCharges,
		RentalType:           req.RentalType,
		AdvancePaymentMethod: req.AdvancePaymentMethod,
	}

	locks := make([]*entity.ReservationLock, len(items))
	for i, item := range items {
		locks[i] = &entity.ReservationLock{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID:    booking.ID,
			ProductID:    item.interval.ProductID,
			DeliveryDate: item.interval.DeliveryDate,
			ReturnDate:   item.interval.ReturnDate,
		}
	}

	if err := s.repo.Booking.CreateWithItems(ctx, booking, locks); err != nil {
		if database.IsUniqueViolation(err) {
			s.log.Warn("Booking creation lost a concurrent race",
				zap.Error(err),
				zap.String("code", booking.Code),
			)
			return nil, apperrors.Conflict("booking conflicts with a concurrent reservation, please retry")
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer", req.CustomerName),
		)
		return nil, apperrors.Internal("create booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("code", booking.Code),
		zap.Int64("invoice_number", booking.InvoiceNumber),
		zap.Int("item_count", len(locks)),
		zap.Float64("rent_amount", booking.RentAmount),
	)

	itemResponses := make([]response.BookingItemResponse, len(locks))
	for i, lock := range locks {
		itemResponses[i] = response.LockToItemResponse(lock, items[i].product)
	}

	resp := response.BookingToResponse(booking, itemResponses)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.List(ctx, req.Search, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, apperrors.Internal("list bookings", err)
	}

	total, err := s.repo.Booking.Count(ctx, req.Search)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, apperrors.Internal("count bookings", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		items, err := s.loadItems(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
		bookingResponses[i] = response.BookingToResponse(booking, items)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking, items)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	applyBookingFields(booking, req)
	booking.UpdatedAt = time.Now()

	upserts, err := s.reconcileItems(ctx, booking, req.Items)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Booking.UpdateWithItems(ctx, booking, upserts); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("booking %s not found", bookingID)
		}
		if database.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("booking conflicts with a concurrent reservation, please retry")
		}
		s.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, apperrors.Internal("update booking", err)
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("upserted_items", len(upserts)),
	)

	items, err := s.loadItems(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking, items)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("booking %s not found", bookingID)
		}
		s.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return apperrors.Internal("delete booking", err)
	}

	return nil
}

func (s *bookingService) RemoveBookingItem(ctx context.Context, lockID string) error {
	id, err := uuid.Parse(lockID)
	if err != nil {
		return apperrors.Validation("invalid item ID format %s", lockID)
	}

	if err := s.repo.ReservationLock.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("booking item %s not found", lockID)
		}
		s.log.Error("Failed to remove booking item",
			zap.Error(err),
			zap.String("lock_id", lockID),
		)
		return apperrors.Internal("remove booking item", err)
	}

	s.log.Info("Booking item removed", zap.String("lock_id", lockID))
	return nil
}

func (s *bookingService) GetReceipt(ctx context.Context, bookingID string) (*response.ReceiptResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	locks, err := s.repo.ReservationLock.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, apperrors.Internal("load booking items", err)
	}

	items := make([]response.BookingItemResponse, len(locks))
	prices := make([]float64, len(locks))
	for i, lock := range locks {
		product, err := s.repo.Product.FindByID(ctx, lock.ProductID)
		if err != nil {
			return nil, apperrors.Internal("load product", err)
		}
		items[i] = response.LockToItemResponse(lock, product)
		if product != nil {
			prices[i] = product.Price
		}
	}

	totals := ComputeReceiptTotals(FinancialInput{
		Prices:            prices,
		Discount:          booking.Discount,
		AdditionalCharges: booking.AdditionalCharges,
		AdvancePayment:    booking.AdvancePayment,
		SecurityDeposit:   booking.SecurityDeposit,
	})

	receipt := &response.ReceiptResponse{
		Code:              booking.Code,
		InvoiceNumber:     booking.InvoiceNumber,
		CustomerName:      booking.CustomerName,
		PrimaryPhone:      booking.PrimaryPhone,
		Items:             items,
		ProductTotal:      totals.ProductTotal,
		AdditionalCharges: booking.AdditionalCharges,
		SecurityDeposit:   booking.SecurityDeposit,
		Discount:          booking.Discount,
		Total:             totals.Total,
		AdvancePayment:    booking.AdvancePayment,
		RemainingPayment:  totals.RemainingPayment,
		ReturnAmount:      totals.ReturnAmount,
		IssuedAt:          time.Now().In(s.loc).Format(utils.DateLayout),
	}

	org, err := s.repo.Organization.Get(ctx)
	if err != nil {
		s.log.Warn("Failed to load organization for receipt", zap.Error(err))
	} else if org != nil {
		orgResp := response.OrganizationToResponse(org)
		receipt.Organization = &orgResp
	}

	return receipt, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperrors.Validation("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("find booking", err)
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking %s not found", bookingID)
	}

	return booking, nil
}

func (s *bookingService) parseInterval(deliveryDate, returnDate string) (RequestedInterval, error) {
	delivery, err := utils.ParseDate(deliveryDate, s.loc)
	if err != nil {
		return RequestedInterval{}, apperrors.Validation("invalid delivery date %s", deliveryDate)
	}

	ret, err := utils.ParseDate(returnDate, s.loc)
	if err != nil {
		return RequestedInterval{}, apperrors.Validation("invalid return date %s", returnDate)
	}

	if delivery.After(ret) {
		return RequestedInterval{}, apperrors.Validation("delivery date %s is after return date %s", deliveryDate, returnDate)
	}

	return RequestedInterval{DeliveryDate: delivery, ReturnDate: ret}, nil
}

// reconcileItems turns the incoming item list into lock rows to upsert.
// An existing {booking, product} lock keeps its ID and falls back to its
// stored dates when the request omits one; an unknown product gets a
// fresh lock. Items not present in the request are left alone.
func (s *bookingService) reconcileItems(ctx context.Context, booking *entity.Booking, items []request.UpdateBookingItemRequest) ([]*entity.ReservationLock, error) {
	if len(items) == 0 {
		return nil, nil
	}

	existing, err := s.repo.ReservationLock.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, apperrors.Internal("load booking items", err)
	}

	byProduct := make(map[uuid.UUID]*entity.ReservationLock, len(existing))
	for _, lock := range existing {
		byProduct[lock.ProductID] = lock
	}

	now := time.Now()
	var upserts []*entity.ReservationLock
	var conflicts []*Conflict

	for _, item := range items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, apperrors.Validation("invalid product ID format %s", item.ProductID)
		}

		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			return nil, apperrors.Internal("check product", err)
		}
		if product == nil {
			return nil, apperrors.NotFound("product %s not found", item.ProductID)
		}

		prev := byProduct[productID]

		delivery, ret, err := s.resolveDates(item, prev)
		if err != nil {
			return nil, err
		}

		interval := RequestedInterval{ProductID: productID, DeliveryDate: delivery, ReturnDate: ret}

		locks, err := s.repo.ReservationLock.FindActiveByProduct(ctx, productID)
		if err != nil {
			return nil, apperrors.Internal("check product availability", err)
		}

		if conflict := CheckProduct(product, locks, interval, booking.ID); conflict != nil {
			conflicts = append(conflicts, conflict)
			continue
		}

		lock := &entity.ReservationLock{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID:    booking.ID,
			ProductID:    productID,
			DeliveryDate: delivery,
			ReturnDate:   ret,
		}
		if prev != nil {
			lock.ID = prev.ID
			lock.CreatedAt = prev.CreatedAt
		}

		upserts = append(upserts, lock)
	}

	if len(conflicts) > 0 {
		return nil, apperrors.Conflict("%s", conflictMessage(conflicts))
	}

	return upserts, nil
}

func (s *bookingService) resolveDates(item request.UpdateBookingItemRequest, prev *entity.ReservationLock) (time.Time, time.Time, error) {
	var delivery, ret time.Time

	switch {
	case item.DeliveryDate != nil:
		parsed, err := utils.ParseDate(*item.DeliveryDate, s.loc)
		if err != nil {
			return delivery, ret, apperrors.Validation("invalid delivery date %s", *item.DeliveryDate)
		}
		delivery = parsed
	case prev != nil:
		delivery = prev.DeliveryDate
	default:
		return delivery, ret, apperrors.Validation("delivery date is required for new item %s", item.ProductID)
	}

	switch {
	case item.ReturnDate != nil:
		parsed, err := utils.ParseDate(*item.ReturnDate, s.loc)
		if err != nil {
			return delivery, ret, apperrors.Validation("invalid return date %s", *item.ReturnDate)
		}
		ret = parsed
	case prev != nil:
		ret = prev.ReturnDate
	default:
		return delivery, ret, apperrors.Validation("return date is required for new item %s", item.ProductID)
	}

	if delivery.After(ret) {
		return delivery, ret, apperrors.Validation("delivery date is after return date for item %s", item.ProductID)
	}

	return delivery, ret, nil
}

func (s *bookingService) loadItems(ctx context.Context, bookingID uuid.UUID) ([]response.BookingItemResponse, error) {
	locks, err := s.repo.ReservationLock.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to load booking items",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, apperrors.Internal("load booking items", err)
	}

	items := make([]response.BookingItemResponse, len(locks))
	for i, lock := range locks {
		product, err := s.repo.Product.FindByID(ctx, lock.ProductID)
		if err != nil {
			return nil, apperrors.Internal("load product", err)
		}
		items[i] = response.LockToItemResponse(lock, product)
	}

	return items, nil
}

func applyBookingFields(booking *entity.Booking, req *request.UpdateBookingRequest) {
	if req.CustomerName != nil {
		booking.CustomerName = *req.CustomerName
	}
	if req.PrimaryPhone != nil {
		booking.PrimaryPhone = *req.PrimaryPhone
	}
	if req.SecondaryPhone != nil {
		booking.SecondaryPhone = req.SecondaryPhone
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}
	if req.RentAmount != nil {
		booking.RentAmount = *req.RentAmount
	}
	if req.TotalDeposit != nil {
		booking.TotalDeposit = *req.TotalDeposit
	}
	if req.SecurityDeposit != nil {
		booking.SecurityDeposit = *req.SecurityDeposit
	}
	if req.ReturnAmount != nil {
		booking.ReturnAmount = *req.ReturnAmount
	}
	if req.AdvancePayment != nil {
		booking.AdvancePayment = *req.AdvancePayment
	}
	if req.Discount != nil {
		booking.Discount = *req.Discount
	}
	if req.DiscountType != nil {
		booking.DiscountType = req.DiscountType
	}
	if req.AdditionalCharges != nil {
		booking.AdditionalCharges = *req.AdditionalCharges
	}
	if req.RentalType != nil {
		booking.RentalType = req.RentalType
	}
	if req.AdvancePaymentMethod != nil {
		booking.AdvancePaymentMethod = req.AdvancePaymentMethod
	}
	if req.DeliveryPaymentMethod != nil {
		booking.DeliveryPaymentMethod = req.DeliveryPaymentMethod
	}
	if req.ReturnPaymentMethod != nil {
		booking.ReturnPaymentMethod = req.ReturnPaymentMethod
	}
}

// conflictMessage folds every conflict into one message so a multi-item
// request reports the whole batch at once.
func conflictMessage(conflicts []*Conflict) string {
	msgs := make([]string, len(conflicts))
	for i, c := range conflicts {
		if c.DateClash {
			msgs[i] = fmt.Sprintf("product %q is already reserved for the requested dates", c.ProductName)
		} else {
			msgs[i] = fmt.Sprintf("product %q is not available (status: %s)", c.ProductName, c.Status)
		}
	}
	return strings.Join(msgs, "; ")
}
