package usecase

import (
	"bytes"
	"testing"

	"wardrobe-rental/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildBookingWorkbook(t *testing.T) {
	rows := []*repository.ExportRow{
		{
			InvoiceNumber:  42,
			Code:           "wr-hman1234",
			CustomerName:   "Farhana Rahman",
			PrimaryPhone:   "01711111111",
			ProductName:    "Lehenga",
			ProductSKU:     "LH-001",
			Price:          500,
			DeliveryDate:   day(t, "2026-03-10"),
			ReturnDate:     day(t, "2026-03-12"),
			RentAmount:     750,
			TotalDeposit:   600,
			ReturnAmount:   -150,
			AdvancePayment: 200,
		},
	}

	data, err := buildBookingWorkbook(rows, "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Bookings", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Bookings: 2026-03-01 - 2026-03-31", title)

	header, err := f.GetCellValue("Bookings", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Invoice #", header)

	invoice, err := f.GetCellValue("Bookings", "A3")
	require.NoError(t, err)
	assert.Equal(t, "42", invoice)

	customer, err := f.GetCellValue("Bookings", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Farhana Rahman", customer)

	delivery, err := f.GetCellValue("Bookings", "H3")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", delivery)
}

func TestBuildBookingWorkbookEmpty(t *testing.T) {
	data, err := buildBookingWorkbook(nil, "2026-03-01", "2026-03-31")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	// Headers are still present for an empty range
	header, err := f.GetCellValue("Bookings", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Code", header)
}
