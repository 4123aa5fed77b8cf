package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/internal/dto/request"
	"wardrobe-rental/pkg/apperrors"
	"wardrobe-rental/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ExportService interface {
	// ExportBookings renders every booking line item delivered in the
	// range into an XLSX workbook and returns its bytes plus a filename.
	ExportBookings(ctx context.Context, req *request.DateRangeRequest) ([]byte, string, error)
}

type exportService struct {
	repo *repository.Repository
	loc  *time.Location
	log  *zap.Logger
}

func NewExportService(repo *repository.Repository, loc *time.Location, log *zap.Logger) ExportService {
	return &exportService{
		repo: repo,
		loc:  loc,
		log:  log.With(zap.String("service", "export")),
	}
}

func (s *exportService) ExportBookings(ctx context.Context, req *request.DateRangeRequest) ([]byte, string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, "", apperrors.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	from, to, err := parseRange(req, s.loc)
	if err != nil {
		return nil, "", err
	}

	rows, err := s.repo.ReservationLock.FindExportRows(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to load export rows", zap.Error(err))
		return nil, "", apperrors.Internal("load export rows", err)
	}

	data, err := buildBookingWorkbook(rows, req.From, req.To)
	if err != nil {
		s.log.Error("Failed to build export workbook", zap.Error(err))
		return nil, "", apperrors.Internal("build export workbook", err)
	}

	s.log.Info("Bookings exported",
		zap.Int("rows", len(rows)),
		zap.String("from", req.From),
		zap.String("to", req.To),
	)

	filename := fmt.Sprintf("bookings_%s_%s.xlsx", req.From, req.To)
	return data, filename, nil
}

func buildBookingWorkbook(rows []*repository.ExportRow, from, to string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("Bookings: %s - %s", from, to))
	_ = f.MergeCell(sheetName, "A1", "M1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	headers := []string{
		"Invoice #", "Code", "Customer", "Phone", "Product", "SKU",
		"Price", "Delivery", "Return", "Rent Amount", "Total Deposit",
		"Return Amount", "Advance Payment",
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, row := range rows {
		values := []interface{}{
			row.InvoiceNumber,
			row.Code,
			row.CustomerName,
			row.PrimaryPhone,
			row.ProductName,
			row.ProductSKU,
			row.Price,
			row.DeliveryDate.Format(utils.DateLayout),
			row.ReturnDate.Format(utils.DateLayout),
			row.RentAmount,
			row.TotalDeposit,
			row.ReturnAmount,
			row.AdvancePayment,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+3)
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 10)
	_ = f.SetColWidth(sheetName, "B", "B", 14)
	_ = f.SetColWidth(sheetName, "C", "C", 24)
	_ = f.SetColWidth(sheetName, "D", "F", 18)
	_ = f.SetColWidth(sheetName, "G", "M", 14)

	_ = f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
