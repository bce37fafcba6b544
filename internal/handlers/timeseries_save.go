package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// entryDateLayout is the wire format for questionnaire dates.
const entryDateLayout = "2006-01-02"

// EntrySaver defines the interface that the service must implement.
type EntrySaver interface {
	SaveEntry(ctx context.Context, userID string, date time.Time, habits models.HabitValues, notes string) error
}

// SaveEntryRequest represents the JSON body for saving a daily entry
// swagger:model SaveEntryRequest
type SaveEntryRequest struct {
	// User identifier
	// required: true
	// default: amine
	UserID string `json:"user_id"`

	// Entry date, YYYY-MM-DD
	// required: true
	// default: 2026-08-20
	Date string `json:"date"`

	// Habit answers, category to value
	// required: true
	Habits models.HabitValues `json:"habits"`

	// Free-form notes
	Notes string `json:"notes"`
}

// SaveEntryResponse represents a successful entry save
// swagger:model SaveEntryResponse
type SaveEntryResponse struct {
	// Success message
	// default: Entry saved
	Message string `json:"message"`
}

// NewSaveEntryHandler returns an HTTP handler for saving a daily lifestyle entry.
// @Summary Save a daily lifestyle entry
// @Description Upserts the questionnaire answers for (user, date). Saving the same day twice replaces the previous answers.
// @Tags timeseries
// @Accept json
// @Produce json
// @Param saveEntryRequest body handlers.SaveEntryRequest true "Daily entry"
// @Success 200 {object} handlers.SaveEntryResponse "Entry saved"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date, unknown category or out-of-range value"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /timeseries/ [post]
func NewSaveEntryHandler(svc EntrySaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		date, err := time.Parse(entryDateLayout, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
			return
		}

		if err := svc.SaveEntry(r.Context(), req.UserID, date, req.Habits, req.Notes); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SaveEntryResponse{Message: "Entry saved"})
	}
}
