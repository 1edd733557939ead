package handler

import (
	"net/http"

	"github.com/clinicio/clinicio/internal/api/response"
	"github.com/clinicio/clinicio/internal/services/analytics"
)

// AnalyticsHandler serves clinic statistics
type AnalyticsHandler struct {
	analyticsService *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Totals handles GET /api/v1/analytics/totals
func (h *AnalyticsHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.analyticsService.Totals(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.TotalsFromModel(totals))
}
