package request

type BookingItemRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid4"`
	DeliveryDate string `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	ReturnDate   string `json:"return_date" validate:"required,datetime=2006-01-02"`
}

type CreateBookingRequest struct {
	CustomerName         string               `json:"customer_name" validate:"required,min=1,max=200"`
	PrimaryPhone         string               `json:"primary_phone" validate:"required,min=5,max=20"`
	SecondaryPhone       *string              `json:"secondary_phone,omitempty"`
	Notes                *string              `json:"notes,omitempty"`
	Items                []BookingItemRequest `json:"items" validate:"required,min=1,dive"`
	Discount             float64              `json:"discount" validate:"gte=0"`
	DiscountType         *string              `json:"discount_type,omitempty"`
	SecurityDeposit      float64              `json:"security_deposit" validate:"gte=0"`
	AdvancePayment       float64              `json:"advance_payment" validate:"gte=0"`
	AdditionalCharges    float64              `json:"additional_charges" validate:"gte=0"`
	RentalType           *string              `json:"rental_type,omitempty"`
	AdvancePaymentMethod *string              `json:"advance_payment_method,omitempty" validate:"omitempty,oneof=Cash Card"`
}

// UpdateBookingItemRequest allows either date to be omitted; a missing
// date falls back to the existing lock's value.
type UpdateBookingItemRequest struct {
	ProductID    string  `json:"product_id" validate:"required,uuid4"`
	DeliveryDate *string `json:"delivery_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate   *string `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateBookingRequest is sparse: absent fields leave the booking
// untouched. Items absent from the list are kept, not removed.
type UpdateBookingRequest struct {
	CustomerName          *string                    `json:"customer_name,omitempty" validate:"omitempty,min=1,max=200"`
	PrimaryPhone          *string                    `json:"primary_phone,omitempty" validate:"omitempty,min=5,max=20"`
	SecondaryPhone        *string                    `json:"secondary_phone,omitempty"`
	Notes                 *string                    `json:"notes,omitempty"`
	Items                 []UpdateBookingItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
	RentAmount            *float64                   `json:"rent_amount,omitempty" validate:"omitempty,gte=0"`
	TotalDeposit          *float64                   `json:"total_deposit,omitempty" validate:"omitempty,gte=0"`
	SecurityDeposit       *float64                   `json:"security_deposit,omitempty" validate:"omitempty,gte=0"`
	ReturnAmount          *float64                   `json:"return_amount,omitempty"`
	AdvancePayment        *float64                   `json:"advance_payment,omitempty" validate:"omitempty,gte=0"`
	Discount              *float64                   `json:"discount,omitempty" validate:"omitempty,gte=0"`
	DiscountType          *string                    `json:"discount_type,omitempty"`
	AdditionalCharges     *float64                   `json:"additional_charges,omitempty" validate:"omitempty,gte=0"`
	RentalType            *string                    `json:"rental_type,omitempty"`
	AdvancePaymentMethod  *string                    `json:"advance_payment_method,omitempty" validate:"omitempty,oneof=Cash Card"`
	DeliveryPaymentMethod *string                    `json:"delivery_payment_method,omitempty" validate:"omitempty,oneof=Cash Card"`
	ReturnPaymentMethod   *string                    `json:"return_payment_method,omitempty" validate:"omitempty,oneof=Cash Card"`
}
