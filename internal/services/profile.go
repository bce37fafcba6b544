package services

import (
	"context"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
}

// ProfileService handles saving and fetching user profiles.
type ProfileService struct {
	reader UserReader
	writer UserWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader UserReader, writer UserWriter) *ProfileService {
	return &ProfileService{reader: reader, writer: writer}
}

// Save upserts the user profile. The password hash of an existing user is
// preserved: profile saves replace profile attributes, not credentials.
func (svc *ProfileService) Save(ctx context.Context, user models.UserDB) error {
	existing, err := svc.reader.GetByID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to check existing profile", "user_id", user.UserID, "err", err)
		return err
	}
	if existing != nil {
		user.PasswordHash = existing.PasswordHash
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save profile", "user_id", user.UserID, "err", err)
		return err
	}

	return nil
}

// Get returns the profile for the given user identifier.
func (svc *ProfileService) Get(ctx context.Context, userID string) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
