package handlers

import (
	"net/http"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/jwt"
)

// NewMeHandler returns an HTTP handler for the authenticated user's profile.
// The user identity is taken from the request context set by the auth
// middleware.
// @Summary Get own profile
// @Description Returns the profile of the authenticated caller.
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserDB "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /me [get]
// @Security BearerAuth
func NewMeHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := jwt.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.Get(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
