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

func TestAuthHandler_Register(t *testing.T) {
	mockService := new(svc_mocks.AuthService)
	handler := handlers.NewAuthHandler(mockService, testLogger())

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "valid registration returns the new user",
			body: `{"name":"Alex","email":"alex@example.com","password":"hunter2hunter2"}`,
			setupMock: func() {
				mockService.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
					Return(&model.User{UserID: uuid.New(), Name: "Alex", Email: "alex@example.com"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"email":"alex@example.com"`,
		},
		{
			name:           "short password fails validation",
			body:           `{"name":"Alex","email":"alex@example.com","password":"short"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name:           "invalid email fails validation",
			body:           `{"name":"Alex","email":"not-an-email","password":"hunter2hunter2"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name: "duplicate email maps to 409",
			body: `{"name":"Alex","email":"alex@example.com","password":"hunter2hunter2"}`,
			setupMock: func() {
				mockService.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
					Return(nil, model.NewAppError("DUPLICATE_EMAIL", "This email address is already registered.", "email", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `DUPLICATE_EMAIL`,
		},
		{
			name:           "malformed body is rejected",
			body:           `{"name":`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `INVALID_REQUEST_BODY`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/register", tt.body)
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := new(svc_mocks.AuthService)
	handler := handlers.NewAuthHandler(mockService, testLogger())

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "valid credentials return a token",
			body: `{"email":"alex@example.com","password":"hunter2hunter2"}`,
			setupMock: func() {
				mockService.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
					Return(&model.LoginResponse{
						AccessToken: "signed.jwt.token",
						User:        &model.User{UserID: uuid.New(), Email: "alex@example.com"},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"access_token":"signed.jwt.token"`,
		},
		{
			name: "bad credentials map to 401",
			body: `{"email":"alex@example.com","password":"wrong-password"}`,
			setupMock: func() {
				mockService.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
					Return(nil, model.NewAppError("INVALID_CREDENTIALS", "Email or password is incorrect.", "", model.ErrForbidden)).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `INVALID_CREDENTIALS`,
		},
		{
			name:           "missing password fails validation",
			body:           `{"email":"alex@example.com"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/login", tt.body)
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
