package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBookingTotals(t *testing.T) {
	totals := ComputeBookingTotals(FinancialInput{
		Prices:            []float64{500, 300},
		Discount:          100,
		AdditionalCharges: 50,
		AdvancePayment:    200,
		SecurityDeposit:   400,
	})

	assert.Equal(t, 800.0, totals.ProductTotal)
	assert.Equal(t, 750.0, totals.RentAmount)
	assert.Equal(t, 600.0, totals.TotalDeposit)
	assert.Equal(t, -150.0, totals.ReturnAmount)
	assert.Equal(t, 150.0, totals.RemainingPayment)
}

func TestComputeBookingTotalsDepositCoversRent(t *testing.T) {
	totals := ComputeBookingTotals(FinancialInput{
		Prices:            []float64{500, 300},
		Discount:          100,
		AdditionalCharges: 50,
		AdvancePayment:    600,
		SecurityDeposit:   400,
	})

	assert.Equal(t, 750.0, totals.RentAmount)
	assert.Equal(t, 1000.0, totals.TotalDeposit)
	assert.Equal(t, 250.0, totals.ReturnAmount)
	assert.Equal(t, -250.0, totals.RemainingPayment)
}

func TestComputeBookingTotalsDiscountFloorsAtZero(t *testing.T) {
	// Discount larger than the product total zeroes the rent before the
	// additional charges are applied, it never goes negative.
	totals := ComputeBookingTotals(FinancialInput{
		Prices:            []float64{100},
		Discount:          500,
		AdditionalCharges: 50,
	})

	assert.Equal(t, 50.0, totals.RentAmount)
	assert.Equal(t, -50.0, totals.ReturnAmount)
}

func TestComputeBookingTotalsEmpty(t *testing.T) {
	totals := ComputeBookingTotals(FinancialInput{})

	assert.Equal(t, 0.0, totals.ProductTotal)
	assert.Equal(t, 0.0, totals.RentAmount)
	assert.Equal(t, 0.0, totals.TotalDeposit)
	assert.Equal(t, 0.0, totals.ReturnAmount)
}

func TestComputeBookingTotalsIdempotent(t *testing.T) {
	in := FinancialInput{
		Prices:            []float64{199.99, 350.01},
		Discount:          25,
		AdditionalCharges: 10,
		AdvancePayment:    100,
		SecurityDeposit:   200,
	}

	first := ComputeBookingTotals(in)
	second := ComputeBookingTotals(in)

	assert.Equal(t, first, second)
}

func TestComputeReceiptTotals(t *testing.T) {
	totals := ComputeReceiptTotals(FinancialInput{
		Prices:            []float64{500, 300},
		Discount:          100,
		AdditionalCharges: 50,
		AdvancePayment:    200,
		SecurityDeposit:   400,
	})

	assert.Equal(t, 800.0, totals.ProductTotal)
	assert.Equal(t, 1150.0, totals.Total)
	assert.Equal(t, 950.0, totals.RemainingPayment)
	assert.Equal(t, 750.0, totals.ReturnAmount)
}

func TestReceiptAndBookingViewsDiffer(t *testing.T) {
	// The two formula sets are intentionally distinct: the receipt folds
	// the security deposit into its grand total, the booking view keeps
	// it on the deposit side.
	in := FinancialInput{
		Prices:          []float64{1000},
		SecurityDeposit: 500,
		AdvancePayment:  300,
	}

	booking := ComputeBookingTotals(in)
	receipt := ComputeReceiptTotals(in)

	assert.Equal(t, 1000.0, booking.RentAmount)
	assert.Equal(t, 1500.0, receipt.Total)
	assert.NotEqual(t, booking.ReturnAmount, receipt.ReturnAmount)
}
