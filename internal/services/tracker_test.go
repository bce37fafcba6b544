package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/services"
)

func TestValidateHabits(t *testing.T) {
	tests := []struct {
		name      string
		habits    models.HabitValues
		wantField string
	}{
		{
			name:   "valid full questionnaire",
			habits: models.HabitValues{"sleep_hours": 8, "stress": 3, "diet": 4, "water_liters": 2, "dairy_servings": 1},
		},
		{
			name:   "single valid answer",
			habits: models.HabitValues{"sleep_hours": 8},
		},
		{
			name:      "sleep hours above range",
			habits:    models.HabitValues{"sleep_hours": 25},
			wantField: "sleep_hours",
		},
		{
			name:      "stress below range",
			habits:    models.HabitValues{"stress": 0},
			wantField: "stress",
		},
		{
			name:      "unknown category",
			habits:    models.HabitValues{"coffee_cups": 3},
			wantField: "coffee_cups",
		},
		{
			name:      "empty questionnaire",
			habits:    models.HabitValues{},
			wantField: "habits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateHabits(tt.habits)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			ve, ok := services.AsValidationError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestTrackerService_SaveEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockEntryWriter(ctrl)
	mockReader := services.NewMockEntryReader(ctrl)
	mockCache := services.NewMockInsightInvalidator(ctrl)

	svc := services.NewTrackerService(mockUsers, mockWriter, mockReader, mockCache)

	user := &models.UserDB{UserID: "u1"}
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	t.Run("valid entry is saved and cache invalidated", func(t *testing.T) {
		habits := models.HabitValues{"sleep_hours": 8, "stress": 2}

		mockUsers.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)
		mockWriter.EXPECT().Save(gomock.Any(), "u1", date, habits, "slept well").Return(nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), "u1").Return(nil)

		err := svc.SaveEntry(context.Background(), "u1", date, habits, "slept well")
		assert.NoError(t, err)
	})

	t.Run("out of range value is rejected before the writer", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)

		err := svc.SaveEntry(context.Background(), "u1", date, models.HabitValues{"sleep_hours": 25}, "")
		ve, ok := services.AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "sleep_hours", ve.Field)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

		err := svc.SaveEntry(context.Background(), "ghost", date, models.HabitValues{"sleep_hours": 8}, "")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("cache invalidation failure does not fail the save", func(t *testing.T) {
		habits := models.HabitValues{"stress": 4}

		mockUsers.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)
		mockWriter.EXPECT().Save(gomock.Any(), "u1", date, habits, "").Return(nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), "u1").Return(errors.New("redis down"))

		err := svc.SaveEntry(context.Background(), "u1", date, habits, "")
		assert.NoError(t, err)
	})

	t.Run("writer error", func(t *testing.T) {
		habits := models.HabitValues{"stress": 4}

		mockUsers.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)
		mockWriter.EXPECT().Save(gomock.Any(), "u1", date, habits, "").Return(errors.New("db error"))

		err := svc.SaveEntry(context.Background(), "u1", date, habits, "")
		assert.EqualError(t, err, "db error")
	})
}

func TestTrackerService_GetTimeseries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockEntryWriter(ctrl)
	mockReader := services.NewMockEntryReader(ctrl)
	mockCache := services.NewMockInsightInvalidator(ctrl)

	svc := services.NewTrackerService(mockUsers, mockWriter, mockReader, mockCache)

	t.Run("returns entries from the reader", func(t *testing.T) {
		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		want := []models.DailyEntryDB{
			{UserID: "u1", EntryDate: from, Habits: models.HabitValues{"sleep_hours": 7}},
			{UserID: "u1", EntryDate: from.AddDate(0, 0, 1), Habits: models.HabitValues{"sleep_hours": 6}},
		}

		mockUsers.EXPECT().GetByID(gomock.Any(), "u1").Return(&models.UserDB{UserID: "u1"}, nil)
		mockReader.EXPECT().ListRange(gomock.Any(), "u1", &from, nil).Return(want, nil)

		got, err := svc.GetTimeseries(context.Background(), "u1", &from, nil)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

		got, err := svc.GetTimeseries(context.Background(), "ghost", nil, nil)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, got)
	})
}
