package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wordnest/internal/handlers"
	"wordnest/internal/model"
	svc_mocks "wordnest/internal/service/mocks"
)

func TestDashboardHandler_GetStats(t *testing.T) {
	mockService := new(svc_mocks.DashboardService)
	handler := handlers.NewDashboardHandler(mockService, testLogger())

	userID := uuid.New()

	t.Run("stats are returned", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("GetStats", mock.Anything, userID).
			Return(&model.DashboardStats{
				TotalWords:       42,
				TotalCollections: 4,
				WordsLearned:     17,
				AverageAccuracy:  70.0,
				RecentActivity:   []*model.QuizResult{{ResultID: uuid.New(), Mode: model.ModeQuiz, Score: 70.0}},
			}, nil).Once()

		req := newJSONRequest(t, http.MethodGet, "/api/v1/dashboard/stats", nil)
		req = req.WithContext(contextWithUser(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.GetStats(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var stats model.DashboardStats
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
		assert.Equal(t, int64(42), stats.TotalWords)
		assert.Equal(t, int64(17), stats.WordsLearned)
		assert.Equal(t, 70.0, stats.AverageAccuracy)
		assert.Equal(t, 0, stats.StudyStreak)
		assert.Len(t, stats.RecentActivity, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("fresh account reports zeros", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("GetStats", mock.Anything, userID).
			Return(&model.DashboardStats{RecentActivity: []*model.QuizResult{}}, nil).Once()

		req := newJSONRequest(t, http.MethodGet, "/api/v1/dashboard/stats", nil)
		req = req.WithContext(contextWithUser(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.GetStats(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"average_accuracy":0`)
		assert.Contains(t, rr.Body.String(), `"recent_activity":[]`)
		mockService.AssertExpectations(t)
	})

	t.Run("service failure maps to 500", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("GetStats", mock.Anything, userID).
			Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to build dashboard stats.", "", model.ErrInternalServer)).Once()

		req := newJSONRequest(t, http.MethodGet, "/api/v1/dashboard/stats", nil)
		req = req.WithContext(contextWithUser(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.GetStats(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "INTERNAL_SERVER_ERROR")
		mockService.AssertExpectations(t)
	})

	t.Run("missing user context is unauthorized", func(t *testing.T) {
		mockService.Mock = mock.Mock{}

		req := newJSONRequest(t, http.MethodGet, "/api/v1/dashboard/stats", nil)
		rr := httptest.NewRecorder()

		handler.GetStats(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertExpectations(t)
	})
}
