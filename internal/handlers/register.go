package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, userID, password, email string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// User identifier, doubles as the login name
	// required: true
	// default: amine
	UserID string `json:"user_id"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Email
	// required: true
	// default: amine@example.com
	Email string `json:"email"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new account. The password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "User already exists / invalid request"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "user_id and password are required")
			return
		}

		if err := svc.Register(r.Context(), req.UserID, req.Password, req.Email); err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeError(w, http.StatusBadRequest, "User already exists")
				return
			}
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{Message: "User registered successfully"})
	}
}
