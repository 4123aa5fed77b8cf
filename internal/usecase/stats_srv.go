package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/internal/dto/request"
	"wardrobe-rental/internal/dto/response"
	"wardrobe-rental/pkg/apperrors"
	"wardrobe-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StatsService interface {
	GetWeeklyRevenue(ctx context.Context, req *request.DateRangeRequest) (*response.WeeklyRevenueResponse, error)
}

type statsService struct {
	repo *repository.Repository
	loc  *time.Location
	log  *zap.Logger
}

func NewStatsService(repo *repository.Repository, loc *time.Location, log *zap.Logger) StatsService {
	return &statsService{
		repo: repo,
		loc:  loc,
		log:  log.With(zap.String("service", "stats")),
	}
}

func (s *statsService) GetWeeklyRevenue(ctx context.Context, req *request.DateRangeRequest) (*response.WeeklyRevenueResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	from, to, err := parseRange(req, s.loc)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ReservationLock.FindRevenueRows(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to load revenue rows", zap.Error(err))
		return nil, apperrors.Internal("load revenue rows", err)
	}

	return BucketWeeklyRevenue(rows, s.loc), nil
}

func parseRange(req *request.DateRangeRequest, loc *time.Location) (time.Time, time.Time, error) {
	from, err := utils.ParseDate(req.From, loc)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Validation("invalid from date %s", req.From)
	}
	to, err := utils.ParseDate(req.To, loc)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Validation("invalid to date %s", req.To)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, apperrors.Validation("from date %s is after to date %s", req.From, req.To)
	}
	return from, to, nil
}

// WeekStart returns the Monday of t's week at midnight in loc. Sunday
// belongs to the week that started the previous Monday.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	day := utils.CivilDay(t, loc)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// BucketWeeklyRevenue folds revenue rows into Monday-anchored weekly
// buckets. Revenue is summed per line item; the booking count is distinct
// bookings per week, so a two-item booking counts once. The Cash/Card
// split is over the whole range, keyed by the advance payment method.
func BucketWeeklyRevenue(rows []*repository.RevenueRow, loc *time.Location) *response.WeeklyRevenueResponse {
	type bucket struct {
		start    time.Time
		revenue  float64
		bookings map[uuid.UUID]struct{}
	}

	buckets := make(map[time.Time]*bucket)
	allBookings := make(map[uuid.UUID]struct{})
	resp := &response.WeeklyRevenueResponse{Weeks: []response.WeeklyRevenueBucket{}}

	for _, row := range rows {
		start := WeekStart(row.DeliveryDate, loc)

		b, ok := buckets[start]
		if !ok {
			b = &bucket{start: start, bookings: make(map[uuid.UUID]struct{})}
			buckets[start] = b
		}
		b.revenue += row.Price
		b.bookings[row.BookingID] = struct{}{}

		resp.TotalRevenue += row.Price
		allBookings[row.BookingID] = struct{}{}

		if row.AdvancePaymentMethod != nil {
			switch *row.AdvancePaymentMethod {
			case "Cash":
				resp.CashRevenue += row.Price
			case "Card":
				resp.CardRevenue += row.Price
			}
		}
	}

	starts := make([]time.Time, 0, len(buckets))
	for start := range buckets {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	for _, start := range starts {
		b := buckets[start]
		end := start.AddDate(0, 0, 6)
		resp.Weeks = append(resp.Weeks, response.WeeklyRevenueBucket{
			WeekLabel:    fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006")),
			WeekStart:    start.Format(utils.DateLayout),
			WeekEnd:      end.Format(utils.DateLayout),
			Revenue:      b.revenue,
			BookingCount: len(b.bookings),
		})
	}

	resp.TotalBookingCount = len(allBookings)
	return resp
}
