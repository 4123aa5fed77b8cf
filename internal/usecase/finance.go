package usecase

// FinancialInput are the adjustment fields of a booking together with the
// prices of its line items. Computation over it is total: no input makes
// it fail, and recomputing from the same input always yields the same
// result.
type FinancialInput struct {
	Prices            []float64
	Discount          float64
	AdditionalCharges float64
	AdvancePayment    float64
	SecurityDeposit   float64
}

// BookingTotals is the booking-view financial summary.
type BookingTotals struct {
	ProductTotal     float64
	RentAmount       float64
	TotalDeposit     float64
	ReturnAmount     float64
	RemainingPayment float64
}

// ReceiptTotals is the receipt-view summary. Its return amount formula
// differs from the booking view's; the two have always been observed
// separately and are kept as distinct computations.
type ReceiptTotals struct {
	ProductTotal     float64
	Total            float64
	RemainingPayment float64
	ReturnAmount     float64
}

func productTotal(prices []float64) float64 {
	var total float64
	for _, price := range prices {
		total += price
	}
	return total
}

// ComputeBookingTotals derives the stored financial fields of a booking.
// The discount floors at zero rent before additional charges; the return
// amount may go negative and is never clamped.
func ComputeBookingTotals(in FinancialInput) BookingTotals {
	total := productTotal(in.Prices)

	rent := total - in.Discount
	if rent < 0 {
		rent = 0
	}
	rent += in.AdditionalCharges

	deposit := in.AdvancePayment + in.SecurityDeposit

	return BookingTotals{
		ProductTotal:     total,
		RentAmount:       rent,
		TotalDeposit:     deposit,
		ReturnAmount:     deposit - rent,
		RemainingPayment: rent - deposit,
	}
}

// ComputeReceiptTotals derives the e-receipt figures.
func ComputeReceiptTotals(in FinancialInput) ReceiptTotals {
	total := productTotal(in.Prices)

	grand := total + in.AdditionalCharges + in.SecurityDeposit - in.Discount
	remaining := grand - in.AdvancePayment

	return ReceiptTotals{
		ProductTotal:     total,
		Total:            grand,
		RemainingPayment: remaining,
		ReturnAmount:     remaining - in.AdvancePayment,
	}
}
