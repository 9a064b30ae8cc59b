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
	svc_mocks "wordnest/internal/service/mocks"
)

func TestUserHandler_GetMe(t *testing.T) {
	mockService := new(svc_mocks.UserService)
	handler := handlers.NewUserHandler(mockService, testLogger())

	userID := uuid.New()

	t.Run("returns the authenticated user's profile", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("GetProfile", mock.Anything, userID).
			Return(&model.User{UserID: userID, Name: "Alex", Email: "alex@example.com"}, nil).Once()

		req := newJSONRequest(t, http.MethodGet, "/api/v1/users/me", nil)
		req = req.WithContext(contextWithUser(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.GetMe(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"email":"alex@example.com"`)
		assert.NotContains(t, rr.Body.String(), "password")
		mockService.AssertExpectations(t)
	})

	t.Run("missing user context is unauthorized", func(t *testing.T) {
		mockService.Mock = mock.Mock{}

		req := newJSONRequest(t, http.MethodGet, "/api/v1/users/me", nil)
		rr := httptest.NewRecorder()

		handler.GetMe(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestUserHandler_PutMe(t *testing.T) {
	mockService := new(svc_mocks.UserService)
	handler := handlers.NewUserHandler(mockService, testLogger())

	userID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "name is updated",
			body: `{"name":"Alexandra"}`,
			setupMock: func() {
				mockService.On("UpdateProfile", mock.Anything, userID, mock.AnythingOfType("*model.UpdateProfileRequest")).
					Return(&model.User{UserID: userID, Name: "Alexandra"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Alexandra"`,
		},
		{
			name:           "malformed image url fails validation",
			body:           `{"image_url":"not a url"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name: "empty update maps to 400",
			body: `{}`,
			setupMock: func() {
				mockService.On("UpdateProfile", mock.Anything, userID, mock.AnythingOfType("*model.UpdateProfileRequest")).
					Return(nil, model.NewAppError("VALIDATION_ERROR", "No fields provided for update.", "", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodPut, "/api/v1/users/me", tt.body)
			req = req.WithContext(contextWithUser(req.Context(), userID))
			rr := httptest.NewRecorder()

			handler.PutMe(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
