package adaptor

import (
	"fmt"
	"net/http"

	"wardrobe-rental/internal/dto/request"
	"wardrobe-rental/internal/usecase"
	"wardrobe-rental/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	stats  usecase.StatsService
	export usecase.ExportService
	log    *zap.Logger
}

func NewStatsHandler(stats usecase.StatsService, export usecase.ExportService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		export: export,
		log:    log.With(zap.String("handler", "stats")),
	}
}

// GetWeeklyRevenue handles GET /api/stats/weekly?from=&to= (protected)
func (h *StatsHandler) GetWeeklyRevenue(w http.ResponseWriter, r *http.Request) {
	req := dateRangeRequest(r)

	revenue, err := h.stats.GetWeeklyRevenue(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get weekly revenue")
		return
	}

	utils.ResponseSuccess(w, "success", revenue)
}

// ExportBookings handles GET /api/bookings/export?from=&to= (protected).
// Responds with the workbook itself, not the JSON envelope.
func (h *StatsHandler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	req := dateRangeRequest(r)

	data, filename, err := h.export.ExportBookings(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "export bookings")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func dateRangeRequest(r *http.Request) *request.DateRangeRequest {
	query := r.URL.Query()
	return &request.DateRangeRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}
}
