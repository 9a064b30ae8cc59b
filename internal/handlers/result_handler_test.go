package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wordnest/internal/handlers"
	"wordnest/internal/model"
	svc_mocks "wordnest/internal/service/mocks"
)

func TestResultHandler_PostResult(t *testing.T) {
	mockService := new(svc_mocks.ResultService)
	handler := handlers.NewResultHandler(mockService, testLogger())

	userID := uuid.New()
	collectionID := uuid.New()

	stored := &model.QuizResult{
		ResultID:       uuid.New(),
		UserID:         userID,
		CollectionID:   &collectionID,
		Mode:           model.ModeQuiz,
		TotalQuestions: 10,
		CorrectAnswers: 7,
		Score:          70.0,
		CompletedAt:    time.Now(),
	}

	tests := []struct {
		name           string
		body           interface{}
		withUser       bool
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "valid result is stored",
			body:     `{"mode":"quiz","total_questions":10,"correct_answers":7,"collection_id":"` + collectionID.String() + `"}`,
			withUser: true,
			setupMock: func() {
				mockService.On("SubmitResult", mock.Anything, userID, mock.AnythingOfType("*model.SubmitResultRequest")).
					Return(stored, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"score":70`,
		},
		{
			name:           "unknown mode fails validation",
			body:           `{"mode":"cramming","total_questions":10,"correct_answers":7}`,
			withUser:       true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name:           "zero total questions fails validation",
			body:           `{"mode":"quiz","total_questions":0,"correct_answers":0}`,
			withUser:       true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name:           "missing correct_answers fails validation",
			body:           `{"mode":"quiz","total_questions":10}`,
			withUser:       true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name:     "correct above total maps to 400",
			body:     `{"mode":"quiz","total_questions":5,"correct_answers":9}`,
			withUser: true,
			setupMock: func() {
				mockService.On("SubmitResult", mock.Anything, userID, mock.AnythingOfType("*model.SubmitResultRequest")).
					Return(nil, model.NewAppError("VALIDATION_ERROR", "correct_answers cannot exceed total_questions.", "correct_answers", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name:           "malformed body is rejected",
			body:           `{"mode":`,
			withUser:       true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `INVALID_REQUEST_BODY`,
		},
		{
			name:           "missing user context is unauthorized",
			body:           `{"mode":"quiz","total_questions":10,"correct_answers":7}`,
			withUser:       false,
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `UNAUTHORIZED`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodPost, "/api/v1/quiz-results", tt.body)
			if tt.withUser {
				req = req.WithContext(contextWithUser(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			handler.PostResult(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestResultHandler_GetResults(t *testing.T) {
	mockService := new(svc_mocks.ResultService)
	handler := handlers.NewResultHandler(mockService, testLogger())

	userID := uuid.New()

	tests := []struct {
		name           string
		query          string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "no limit passes zero through",
			query: "",
			setupMock: func() {
				mockService.On("GetRecentResults", mock.Anything, userID, 0).
					Return([]*model.QuizResult{{ResultID: uuid.New(), Mode: model.ModeQuiz, Score: 80.0}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"score":80`,
		},
		{
			name:  "explicit limit is forwarded",
			query: "limit=10",
			setupMock: func() {
				mockService.On("GetRecentResults", mock.Anything, userID, 10).
					Return([]*model.QuizResult{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:  "nil result renders an empty array",
			query: "",
			setupMock: func() {
				mockService.On("GetRecentResults", mock.Anything, userID, 0).
					Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "non-numeric limit is rejected",
			query:          "limit=ten",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `INVALID_URL_PARAM`,
		},
		{
			name:           "negative limit is rejected",
			query:          "limit=-1",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `INVALID_URL_PARAM`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodGet, "/api/v1/quiz-results?"+tt.query, nil)
			req = req.WithContext(contextWithUser(req.Context(), userID))
			rr := httptest.NewRecorder()

			handler.GetResults(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestResultHandler_GetProgress(t *testing.T) {
	mockService := new(svc_mocks.ResultService)
	handler := handlers.NewResultHandler(mockService, testLogger())

	userID := uuid.New()
	collectionID := uuid.New()

	t.Run("records are returned", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("GetProgress", mock.Anything, userID).
			Return([]*model.ProgressRecord{
				{ProgressID: uuid.New(), UserID: userID, CollectionID: collectionID, TotalQuizzes: 3, CorrectAnswers: 12},
			}, nil).Once()

		req := newJSONRequest(t, http.MethodGet, "/api/v1/progress", nil)
		req = req.WithContext(contextWithUser(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.GetProgress(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"total_quizzes":3`)
		mockService.AssertExpectations(t)
	})

	t.Run("nil records render an empty array", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("GetProgress", mock.Anything, userID).Return(nil, nil).Once()

		req := newJSONRequest(t, http.MethodGet, "/api/v1/progress", nil)
		req = req.WithContext(contextWithUser(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.GetProgress(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", rr.Body.String())
		mockService.AssertExpectations(t)
	})
}
