package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/services"
)

func TestGetInsightsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newRouter := func(svc InsightComputer) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/insights/{user_id}", NewGetInsightsHandler(svc))
		return r
	}

	t.Run("default window", func(t *testing.T) {
		mockSvc := NewMockInsightComputer(ctrl)
		mockSvc.EXPECT().
			Compute(gomock.Any(), "u1", 30).
			Return(&models.InsightReport{
				Correlations: map[string]float64{"stress": 0.72},
				Summary:      "stress shows the strongest association",
				WindowDays:   30,
				SampleDays:   14,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/insights/u1", nil)
		rec := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.InsightReport
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.InDelta(t, 0.72, got.Correlations["stress"], 1e-9)
		assert.Equal(t, 30, got.WindowDays)
	})

	t.Run("explicit window", func(t *testing.T) {
		mockSvc := NewMockInsightComputer(ctrl)
		mockSvc.EXPECT().
			Compute(gomock.Any(), "u1", 90).
			Return(&models.InsightReport{WindowDays: 90}, nil)

		req := httptest.NewRequest(http.MethodGet, "/insights/u1?window_days=90", nil)
		rec := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed window", func(t *testing.T) {
		mockSvc := NewMockInsightComputer(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/insights/u1?window_days=lots", nil)
		rec := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockSvc := NewMockInsightComputer(ctrl)
		mockSvc.EXPECT().
			Compute(gomock.Any(), "ghost", 30).
			Return(nil, services.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/insights/ghost", nil)
		rec := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
