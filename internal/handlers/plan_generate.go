package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// PlanGenerator defines the interface that the service must implement.
type PlanGenerator interface {
	Generate(ctx context.Context, userID string) (*models.SkinPlanDB, error)
}

// GeneratePlanRequest represents the JSON body for plan generation
// swagger:model GeneratePlanRequest
type GeneratePlanRequest struct {
	// User identifier
	// required: true
	// default: amine
	UserID string `json:"user_id"`
}

// NewGeneratePlanHandler returns an HTTP handler for generating a skin plan.
// @Summary Generate a skincare plan
// @Description Derives product categories from recent severity and habit correlations, searches the product upstream and persists the plan. Any search failure fails the whole generation.
// @Tags skin-plan
// @Accept json
// @Produce json
// @Param generatePlanRequest body handlers.GeneratePlanRequest true "Plan generation request"
// @Success 200 {object} models.SkinPlanDB "Generated plan"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 502 {object} handlers.ErrorResponse "Product search unavailable"
// @Router /skin-plan/generate [post]
func NewGeneratePlanHandler(svc PlanGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GeneratePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID == "" {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		plan, err := svc.Generate(r.Context(), req.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, plan)
	}
}
