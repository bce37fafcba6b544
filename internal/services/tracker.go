package services

import (
	"context"
	"fmt"
	"time"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// habitRange bounds the accepted values for one habit category.
type habitRange struct {
	Min float64
	Max float64
}

// habitSchema is the fixed questionnaire schema. Categories outside this
// map are rejected, as are values outside the category's range.
var habitSchema = map[string]habitRange{
	"sleep_hours":    {Min: 0, Max: 24},
	"stress":         {Min: 1, Max: 5},
	"diet":           {Min: 1, Max: 5},
	"water_liters":   {Min: 0, Max: 8},
	"dairy_servings": {Min: 0, Max: 10},
}

// EntryWriter defines write operations for daily entries.
type EntryWriter interface {
	Save(ctx context.Context, userID string, date time.Time, habits models.HabitValues, notes string) error
}

// EntryReader defines read operations for daily entries.
type EntryReader interface {
	ListRange(ctx context.Context, userID string, from, to *time.Time) ([]models.DailyEntryDB, error)
}

// InsightInvalidator drops cached insight reports for a user.
type InsightInvalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

// TrackerService validates and persists lifestyle questionnaire answers and
// exposes them as an ordered time series.
type TrackerService struct {
	users    UserReader
	writer   EntryWriter
	reader   EntryReader
	insights InsightInvalidator
}

// NewTrackerService creates a new TrackerService instance.
func NewTrackerService(users UserReader, writer EntryWriter, reader EntryReader, insights InsightInvalidator) *TrackerService {
	return &TrackerService{
		users:    users,
		writer:   writer,
		reader:   reader,
		insights: insights,
	}
}

// ValidateHabits checks answers against the fixed schema and returns a
// ValidationError naming the first offending field.
func ValidateHabits(habits models.HabitValues) error {
	if len(habits) == 0 {
		return &ValidationError{Field: "habits", Reason: "at least one habit value is required"}
	}
	for category, value := range habits {
		bounds, ok := habitSchema[category]
		if !ok {
			return &ValidationError{Field: category, Reason: "unknown habit category"}
		}
		if value < bounds.Min || value > bounds.Max {
			return &ValidationError{
				Field:  category,
				Reason: fmt.Sprintf("value %g out of range [%g, %g]", value, bounds.Min, bounds.Max),
			}
		}
	}
	return nil
}

// SaveEntry validates the answers and upserts the entry for (user, date).
// Saving the same day twice replaces the previous answers entirely.
func (svc *TrackerService) SaveEntry(ctx context.Context, userID string, date time.Time, habits models.HabitValues, notes string) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := ValidateHabits(habits); err != nil {
		return err
	}

	if err := svc.writer.Save(ctx, userID, date, habits, notes); err != nil {
		logger.Log.Errorw("failed to save entry", "user_id", userID, "date", date, "err", err)
		return err
	}

	// New data makes cached correlations stale. Best effort only.
	if err := svc.insights.Invalidate(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate insight cache", "user_id", userID, "err", err)
	}

	return nil
}

// GetTimeseries returns the user's entries ordered by date ascending,
// inclusive bounds, nil bound meaning unbounded.
func (svc *TrackerService) GetTimeseries(ctx context.Context, userID string, from, to *time.Time) ([]models.DailyEntryDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return svc.reader.ListRange(ctx, userID, from, to)
}
