package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// TimeseriesReader defines the interface that the service must implement.
type TimeseriesReader interface {
	GetTimeseries(ctx context.Context, userID string, from, to *time.Time) ([]models.DailyEntryDB, error)
}

// TimeseriesResponse represents the ordered entry series for a user
// swagger:model TimeseriesResponse
type TimeseriesResponse struct {
	// Entries ordered by date ascending
	Entries []models.DailyEntryDB `json:"entries"`
}

// parseDateBound parses an optional YYYY-MM-DD query value.
func parseDateBound(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(entryDateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// NewGetTimeseriesHandler returns an HTTP handler for reading the entry series.
// @Summary Get lifestyle time series
// @Description Returns the user's daily entries ordered by date ascending. Bounds are inclusive; either may be omitted.
// @Tags timeseries
// @Produce json
// @Param user_id path string true "User identifier"
// @Param from query string false "Inclusive lower bound, YYYY-MM-DD"
// @Param to query string false "Inclusive upper bound, YYYY-MM-DD"
// @Success 200 {object} handlers.TimeseriesResponse "Ordered entries"
// @Failure 400 {object} handlers.ErrorResponse "Malformed bound"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /timeseries/{user_id} [get]
func NewGetTimeseriesHandler(svc TimeseriesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")

		from, err := parseDateBound(r.URL.Query().Get("from"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "from must be formatted YYYY-MM-DD")
			return
		}
		to, err := parseDateBound(r.URL.Query().Get("to"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "to must be formatted YYYY-MM-DD")
			return
		}

		entries, err := svc.GetTimeseries(r.Context(), userID, from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TimeseriesResponse{Entries: entries})
	}
}
