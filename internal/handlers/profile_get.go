package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, userID string) (*models.UserDB, error)
}

// NewGetProfileHandler returns an HTTP handler for fetching a user profile.
// @Summary Get user profile
// @Description Returns the profile identified by user_id.
// @Tags profile
// @Produce json
// @Param user_id path string true "User identifier"
// @Success 200 {object} models.UserDB "User profile"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /profile/{user_id} [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")

		user, err := svc.Get(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
