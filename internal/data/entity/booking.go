package entity

// Booking is one customer reservation spanning one or more products.
// InvoiceNumber is unique and strictly increasing in creation order;
// Code is the human-readable invoice code, display only.
type Booking struct {
	Base
	Code                  string  `db:"code"`
	InvoiceNumber         int64   `db:"invoice_number"`
	CustomerName          string  `db:"customer_name"`
	PrimaryPhone          string  `db:"primary_phone"`
	SecondaryPhone        *string `db:"secondary_phone"`
	Notes                 *string `db:"notes"`
	RentAmount            float64 `db:"rent_amount"`
	TotalDeposit          float64 `db:"total_deposit"`
	SecurityDeposit       float64 `db:"security_deposit"`
	ReturnAmount          float64 `db:"return_amount"`
	AdvancePayment        float64 `db:"advance_payment"`
	Discount              float64 `db:"discount"`
	DiscountType          *string `db:"discount_type"`
	AdditionalCharges     float64 `db:"additional_charges"`
	RentalType            *string `db:"rental_type"`
	AdvancePaymentMethod  *string `db:"advance_payment_method"`
	DeliveryPaymentMethod *string `db:"delivery_payment_method"`
	ReturnPaymentMethod   *string `db:"return_payment_method"`
}
