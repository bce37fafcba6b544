package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/services"
)

func TestSaveEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockEntrySaver)
		expectedCode  int
		expectedField string
	}{
		{
			name: "success",
			body: `{"user_id":"u1","date":"2026-08-20","habits":{"sleep_hours":8,"stress":2},"notes":"fine"}`,
			mockSetup: func(m *MockEntrySaver) {
				m.EXPECT().
					SaveEntry(gomock.Any(), "u1", date, models.HabitValues{"sleep_hours": 8, "stress": 2}, "fine").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "out of range habit names the field",
			body: `{"user_id":"u1","date":"2026-08-20","habits":{"sleep_hours":25}}`,
			mockSetup: func(m *MockEntrySaver) {
				m.EXPECT().
					SaveEntry(gomock.Any(), "u1", date, models.HabitValues{"sleep_hours": 25}, "").
					Return(&services.ValidationError{Field: "sleep_hours", Reason: "value 25 out of range [0, 24]"})
			},
			expectedCode:  http.StatusBadRequest,
			expectedField: "sleep_hours",
		},
		{
			name: "unknown user",
			body: `{"user_id":"ghost","date":"2026-08-20","habits":{"stress":2}}`,
			mockSetup: func(m *MockEntrySaver) {
				m.EXPECT().
					SaveEntry(gomock.Any(), "ghost", date, models.HabitValues{"stress": 2}, "").
					Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed date",
			body:         `{"user_id":"u1","date":"20/08/2026","habits":{"stress":2}}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `{not json}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEntrySaver(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/timeseries/", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			NewSaveEntryHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedField != "" {
				var body ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.expectedField, body.Field)
			}
		})
	}
}

func TestGetTimeseriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newRouter := func(svc TimeseriesReader) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/timeseries/{user_id}", NewGetTimeseriesHandler(svc))
		return r
	}

	t.Run("returns entries in order", func(t *testing.T) {
		mockSvc := NewMockTimeseriesReader(ctrl)
		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		entries := []models.DailyEntryDB{
			{UserID: "u1", EntryDate: from, Habits: models.HabitValues{"sleep_hours": 7}},
			{UserID: "u1", EntryDate: from.AddDate(0, 0, 2), Habits: models.HabitValues{"sleep_hours": 6}},
		}

		mockSvc.EXPECT().
			GetTimeseries(gomock.Any(), "u1", &from, nil).
			Return(entries, nil)

		req := httptest.NewRequest(http.MethodGet, "/timeseries/u1?from=2026-08-01", nil)
		rec := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body TimeseriesResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Len(t, body.Entries, 2)
		assert.True(t, body.Entries[0].EntryDate.Before(body.Entries[1].EntryDate))
	})

	t.Run("malformed bound", func(t *testing.T) {
		mockSvc := NewMockTimeseriesReader(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/timeseries/u1?from=yesterday", nil)
		rec := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockSvc := NewMockTimeseriesReader(ctrl)

		mockSvc.EXPECT().
			GetTimeseries(gomock.Any(), "ghost", nil, nil).
			Return(nil, services.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/timeseries/ghost", nil)
		rec := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
