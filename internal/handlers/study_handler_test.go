package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wordnest/internal/handlers"
	"wordnest/internal/model"
	"wordnest/internal/service"
	svc_mocks "wordnest/internal/service/mocks"
	"wordnest/internal/study"
)

func TestStudyHandler_GetSession(t *testing.T) {
	mockService := new(svc_mocks.StudyService)
	handler := handlers.NewStudyHandler(mockService, testLogger())

	userID := uuid.New()
	collectionID := uuid.New()

	quizSession := &study.Session{Mode: model.ModeQuiz, State: study.StateInProgress}

	tests := []struct {
		name           string
		query          string
		withUser       bool
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "no collection scope studies all words",
			query:    "mode=quiz",
			withUser: true,
			setupMock: func() {
				mockService.On("BuildSession", mock.Anything, userID, model.ModeQuiz, (*service.CollectionScope)(nil)).
					Return(quizSession, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"mode":"quiz"`,
		},
		{
			name:     "collection id scopes the session",
			query:    "mode=flashcard&collection_id=" + collectionID.String(),
			withUser: true,
			setupMock: func() {
				mockService.On("BuildSession", mock.Anything, userID, model.ModeFlashcard,
					&service.CollectionScope{CollectionID: &collectionID}).
					Return(&study.Session{Mode: model.ModeFlashcard, State: study.StateInProgress}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"mode":"flashcard"`,
		},
		{
			name:     "uncategorized sentinel scopes to entries with no collection",
			query:    "mode=spelling&collection_id=uncategorized",
			withUser: true,
			setupMock: func() {
				mockService.On("BuildSession", mock.Anything, userID, model.ModeSpelling,
					&service.CollectionScope{CollectionID: nil}).
					Return(&study.Session{Mode: model.ModeSpelling, State: study.StateInProgress}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"mode":"spelling"`,
		},
		{
			name:           "missing mode is rejected",
			query:          "",
			withUser:       true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `INVALID_STUDY_MODE`,
		},
		{
			name:           "unknown mode is rejected",
			query:          "mode=cramming",
			withUser:       true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `INVALID_STUDY_MODE`,
		},
		{
			name:           "malformed collection id is rejected",
			query:          "mode=quiz&collection_id=nope",
			withUser:       true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `INVALID_URL_PARAM`,
		},
		{
			name:     "too few words maps to 422",
			query:    "mode=quiz",
			withUser: true,
			setupMock: func() {
				mockService.On("BuildSession", mock.Anything, userID, model.ModeQuiz, (*service.CollectionScope)(nil)).
					Return(nil, model.NewAppError("INSUFFICIENT_WORDS", "Not enough words to start a session.", "", model.ErrInsufficientData)).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `INSUFFICIENT_WORDS`,
		},
		{
			name:           "missing user context is unauthorized",
			query:          "mode=quiz",
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

			req := newJSONRequest(t, http.MethodGet, "/api/v1/study/session?"+tt.query, nil)
			if tt.withUser {
				req = req.WithContext(contextWithUser(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			handler.GetSession(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
