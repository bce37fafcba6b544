package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// maxUploadBytes bounds an uploaded photo at 10 MiB.
const maxUploadBytes = 10 << 20

// allowedImageTypes is the upload content-type whitelist.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/bmp":  true,
}

// Detecter defines the interface that the service must implement.
type Detecter interface {
	Detect(ctx context.Context, userID string, image []byte, contentType string) (*models.AssessmentDB, error)
}

// NewDetectHandler returns an HTTP handler for photo analysis.
// @Summary Analyze a skin photo
// @Description Accepts a multipart upload (field "file", jpeg/png/bmp), runs the hosted vision model and returns the stored assessment.
// @Tags detect
// @Accept multipart/form-data
// @Produce json
// @Param user_id formData string true "User identifier"
// @Param file formData file true "Skin photo"
// @Success 200 {object} models.AssessmentDB "Photo assessment"
// @Failure 400 {object} handlers.ErrorResponse "Invalid image or missing fields"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 415 {object} handlers.ErrorResponse "Unsupported media type"
// @Failure 502 {object} handlers.ErrorResponse "Vision model unavailable"
// @Router /detect/ [post]
func NewDetectHandler(svc Detecter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "Expected a multipart upload")
			return
		}

		userID := r.FormValue("user_id")
		if userID == "" {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "file is required")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			writeError(w, http.StatusUnsupportedMediaType, "Only jpeg, png and bmp uploads are supported")
			return
		}

		imageBytes, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read upload", "user_id", userID, "err", err)
			writeError(w, http.StatusBadRequest, "Failed to read upload")
			return
		}

		assessment, err := svc.Detect(r.Context(), userID, imageBytes, contentType)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, assessment)
	}
}
