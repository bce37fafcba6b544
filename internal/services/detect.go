package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	// Register the decoders the upload whitelist allows.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/google/uuid"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// VisionAnalyzer is the narrow capability of the hosted vision model: one
// image in, one structured assessment out. A deterministic stand-in can be
// substituted in tests without contacting any network service.
type VisionAnalyzer interface {
	Analyze(ctx context.Context, image []byte, contentType string) (*models.AssessmentDB, error)
}

// PhotoStorer persists the uploaded image and returns an opaque handle.
type PhotoStorer interface {
	Store(ctx context.Context, userID string, image []byte, contentType string) (string, error)
}

// AssessmentWriter defines write operations for photo assessments.
type AssessmentWriter interface {
	Save(ctx context.Context, a models.AssessmentDB) error
}

// DetectService runs the photo-analysis pipeline: validate the upload,
// delegate to the hosted model, store the photo, persist the immutable
// assessment, and publish an audit event.
type DetectService struct {
	users    UserReader
	vision   VisionAnalyzer
	photos   PhotoStorer
	writer   AssessmentWriter
	insights InsightInvalidator
	events   EventWriter
}

// NewDetectService creates a new DetectService instance.
func NewDetectService(
	users UserReader,
	vision VisionAnalyzer,
	photos PhotoStorer,
	writer AssessmentWriter,
	insights InsightInvalidator,
	events EventWriter,
) *DetectService {
	return &DetectService{
		users:    users,
		vision:   vision,
		photos:   photos,
		writer:   writer,
		insights: insights,
		events:   events,
	}
}

// Detect analyzes one uploaded skin photo and returns the stored assessment.
func (svc *DetectService) Detect(ctx context.Context, userID string, imageBytes []byte, contentType string) (*models.AssessmentDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if len(imageBytes) == 0 {
		return nil, fmt.Errorf("empty upload: %w", ErrInvalidImage)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(imageBytes)); err != nil {
		logger.Log.Errorw("upload is not a decodable image", "user_id", userID, "err", err)
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidImage)
	}

	assessment, err := svc.vision.Analyze(ctx, imageBytes, contentType)
	if err != nil {
		logger.Log.Errorw("vision analysis failed", "user_id", userID, "err", err)
		return nil, mapUpstreamErr(err)
	}

	photoKey, err := svc.photos.Store(ctx, userID, imageBytes, contentType)
	if err != nil {
		logger.Log.Errorw("failed to store photo", "user_id", userID, "err", err)
		return nil, err
	}

	assessment.AssessmentID = uuid.New()
	assessment.UserID = userID
	assessment.TakenAt = time.Now().UTC()
	assessment.PhotoKey = photoKey

	if err := svc.writer.Save(ctx, *assessment); err != nil {
		logger.Log.Errorw("failed to save assessment", "user_id", userID, "err", err)
		return nil, err
	}

	if err := svc.insights.Invalidate(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate insight cache", "user_id", userID, "err", err)
	}

	publishEvent(ctx, svc.events, userID, "assessment.created", assessment.AssessmentID.String())

	return assessment, nil
}
