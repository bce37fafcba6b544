package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// PlanHistorian defines the interface that the service must implement.
type PlanHistorian interface {
	History(ctx context.Context, userID string) ([]models.SkinPlanDB, error)
}

// PlanHistoryResponse represents a user's past plans
// swagger:model PlanHistoryResponse
type PlanHistoryResponse struct {
	// Plans ordered newest first
	Plans []models.SkinPlanDB `json:"plans"`
}

// NewPlanHistoryHandler returns an HTTP handler for listing past plans.
// @Summary Get plan history
// @Description Returns the user's prior skincare plans, newest first.
// @Tags skin-plan
// @Produce json
// @Param user_id path string true "User identifier"
// @Success 200 {object} handlers.PlanHistoryResponse "Plan history"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /skin-plan/{user_id} [get]
func NewPlanHistoryHandler(svc PlanHistorian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")

		plans, err := svc.History(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PlanHistoryResponse{Plans: plans})
	}
}
