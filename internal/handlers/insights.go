package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// defaultWindowDays is the trailing window used when none is requested.
const defaultWindowDays = 30

// InsightComputer defines the interface that the service must implement.
type InsightComputer interface {
	Compute(ctx context.Context, userID string, windowDays int) (*models.InsightReport, error)
}

// NewGetInsightsHandler returns an HTTP handler for habit/severity insights.
// @Summary Get habit insights
// @Description Returns Pearson correlations between habit categories and flare severity over the trailing window, plus a summary line.
// @Tags insights
// @Produce json
// @Param user_id path string true "User identifier"
// @Param window_days query int false "Trailing window in days, default 30"
// @Success 200 {object} models.InsightReport "Correlations and summary"
// @Failure 400 {object} handlers.ErrorResponse "Malformed window"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /insights/{user_id} [get]
func NewGetInsightsHandler(svc InsightComputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")

		windowDays := defaultWindowDays
		if raw := r.URL.Query().Get("window_days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeError(w, http.StatusBadRequest, "window_days must be a positive integer")
				return
			}
			windowDays = parsed
		}

		report, err := svc.Compute(r.Context(), userID, windowDays)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
