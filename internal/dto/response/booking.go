package response

import (
	"time"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/pkg/utils"
)

type BookingItemResponse struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name,omitempty"`
	ProductSKU   string  `json:"product_sku,omitempty"`
	Price        float64 `json:"price"`
	DeliveryDate string  `json:"delivery_date"`
	ReturnDate   string  `json:"return_date"`
}

type BookingResponse struct {
	ID                    string                `json:"id"`
	Code                  string                `json:"code"`
	InvoiceNumber         int64                 `json:"invoice_number"`
	CustomerName          string                `json:"customer_name"`
	PrimaryPhone          string                `json:"primary_phone"`
	SecondaryPhone        *string               `json:"secondary_phone,omitempty"`
	Notes                 *string               `json:"notes,omitempty"`
	Items                 []BookingItemResponse `json:"items"`
	RentAmount            float64               `json:"rent_amount"`
	TotalDeposit          float64               `json:"total_deposit"`
	SecurityDeposit       float64               `json:"security_deposit"`
	ReturnAmount          float64               `json:"return_amount"`
	AdvancePayment        float64               `json:"advance_payment"`
	RemainingPayment      float64               `json:"remaining_payment"`
	Discount              float64               `json:"discount"`
	DiscountType          *string               `json:"discount_type,omitempty"`
	AdditionalCharges     float64               `json:"additional_charges"`
	RentalType            *string               `json:"rental_type,omitempty"`
	AdvancePaymentMethod  *string               `json:"advance_payment_method,omitempty"`
	DeliveryPaymentMethod *string               `json:"delivery_payment_method,omitempty"`
	ReturnPaymentMethod   *string               `json:"return_payment_method,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
}

// BookingToResponse builds the booking view. RemainingPayment here is the
// booking-view derivation (rent - deposit); the receipt view computes its
// own figures, see ReceiptResponse.
func BookingToResponse(b *entity.Booking, items []BookingItemResponse) BookingResponse {
	return BookingResponse{
		ID:                    b.ID.String(),
		Code:                  b.Code,
		InvoiceNumber:         b.InvoiceNumber,
		CustomerName:          b.CustomerName,
		PrimaryPhone:          b.PrimaryPhone,
		SecondaryPhone:        b.SecondaryPhone,
		Notes:                 b.Notes,
		Items:                 items,
		RentAmount:            b.RentAmount,
		TotalDeposit:          b.TotalDeposit,
		SecurityDeposit:       b.SecurityDeposit,
		ReturnAmount:          b.ReturnAmount,
		AdvancePayment:        b.AdvancePayment,
		RemainingPayment:      b.RentAmount - b.TotalDeposit,
		Discount:              b.Discount,
		DiscountType:          b.DiscountType,
		AdditionalCharges:     b.AdditionalCharges,
		RentalType:            b.RentalType,
		AdvancePaymentMethod:  b.AdvancePaymentMethod,
		DeliveryPaymentMethod: b.DeliveryPaymentMethod,
		ReturnPaymentMethod:   b.ReturnPaymentMethod,
		CreatedAt:             b.CreatedAt,
	}
}

func LockToItemResponse(l *entity.ReservationLock, product *entity.Product) BookingItemResponse {
	item := BookingItemResponse{
		ID:           l.ID.String(),
		ProductID:    l.ProductID.String(),
		DeliveryDate: l.DeliveryDate.Format(utils.DateLayout),
		ReturnDate:   l.ReturnDate.Format(utils.DateLayout),
	}
	if product != nil {
		item.ProductName = product.Name
		item.ProductSKU = product.SKU
		item.Price = product.Price
	}
	return item
}
