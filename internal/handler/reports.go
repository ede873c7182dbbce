package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xilang-pos/api/internal/order"
)

// ReportStore defines the aggregation methods needed by report handlers.
// Satisfied by *order.Store.
type ReportStore interface {
	Summarize(from, to time.Time) order.Summary
}

// ReportHandler handles the manager reporting endpoints.
type ReportHandler struct {
	store ReportStore
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(store ReportStore) *ReportHandler {
	return &ReportHandler{store: store}
}

// RegisterRoutes registers report endpoints on the given Chi router.
func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/summary", h.Summary)
	r.Get("/reports/sales", h.Sales)
}

type summaryResponse struct {
	Date string `json:"date"`
	order.Summary
}

type salesResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	order.Summary
}

// Summary handles GET /reports/summary?date=YYYY-MM-DD. Defaults to today.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if s := r.URL.Query().Get("date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		day = t
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	writeJSON(w, http.StatusOK, summaryResponse{
		Date:    from.Format("2006-01-02"),
		Summary: h.store.Summarize(from, to),
	})
}

// Sales handles GET /reports/sales?start_date=&end_date=. Both bounds are
// required; end_date is inclusive.
func (h *ReportHandler) Sales(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start_date")
	endStr := r.URL.Query().Get("end_date")
	if startStr == "" || endStr == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "start_date and end_date are required"})
		return
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start_date format, use YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid end_date format, use YYYY-MM-DD"})
		return
	}
	if end.Before(start) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "end_date must not be before start_date"})
		return
	}

	writeJSON(w, http.StatusOK, salesResponse{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Summary:   h.store.Summarize(start, end.AddDate(0, 0, 1)),
	})
}
