package response

// ReceiptResponse is the e-receipt view of a booking. Its totals follow
// the receipt formula set, which intentionally differs from the
// booking-view figures in BookingResponse.
type ReceiptResponse struct {
	Organization     *OrganizationResponse `json:"organization,omitempty"`
	Code             string                `json:"code"`
	InvoiceNumber    int64                 `json:"invoice_number"`
	CustomerName     string                `json:"customer_name"`
	PrimaryPhone     string                `json:"primary_phone"`
	Items            []BookingItemResponse `json:"items"`
	ProductTotal     float64               `json:"product_total"`
	AdditionalCharges float64              `json:"additional_charges"`
	SecurityDeposit  float64               `json:"security_deposit"`
	Discount         float64               `json:"discount"`
	Total            float64               `json:"total"`
	AdvancePayment   float64               `json:"advance_payment"`
	RemainingPayment float64               `json:"remaining_payment"`
	ReturnAmount     float64               `json:"return_amount"`
	IssuedAt         string                `json:"issued_at"`
}
