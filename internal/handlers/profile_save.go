package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// ProfileSaver defines the interface that the service must implement.
type ProfileSaver interface {
	Save(ctx context.Context, user models.UserDB) error
}

// SaveProfileRequest represents the JSON body for saving a profile
// swagger:model SaveProfileRequest
type SaveProfileRequest struct {
	// User identifier
	// required: true
	// default: amine
	UserID string `json:"user_id"`

	// Display name
	// default: Amine
	Name string `json:"name"`

	// Email
	// default: amine@example.com
	Email string `json:"email"`

	// Skin type: oily, dry, combination or normal
	// default: oily
	SkinType string `json:"skin_type"`

	// Skincare goals
	Goals []string `json:"goals"`

	// Date of birth, YYYY-MM-DD
	DOB string `json:"dob"`
}

// SaveProfileResponse represents a successful profile save
// swagger:model SaveProfileResponse
type SaveProfileResponse struct {
	// Success message
	// default: Profile saved
	Message string `json:"message"`
}

// NewSaveProfileHandler returns an HTTP handler for upserting a user profile.
// @Summary Save user profile
// @Description Creates or replaces the profile identified by user_id. Credentials of an existing account are untouched.
// @Tags profile
// @Accept json
// @Produce json
// @Param saveProfileRequest body handlers.SaveProfileRequest true "User profile"
// @Success 200 {object} handlers.SaveProfileResponse "Profile saved"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /profile/ [post]
func NewSaveProfileHandler(svc ProfileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID == "" {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		user := models.UserDB{
			UserID:   req.UserID,
			Name:     req.Name,
			Email:    req.Email,
			SkinType: req.SkinType,
			Goals:    models.Goals(req.Goals),
		}
		if req.DOB != "" {
			dob, err := time.Parse(entryDateLayout, req.DOB)
			if err != nil {
				writeError(w, http.StatusBadRequest, "dob must be formatted YYYY-MM-DD")
				return
			}
			user.DOB = &dob
		}

		if err := svc.Save(r.Context(), user); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SaveProfileResponse{Message: "Profile saved"})
	}
}
