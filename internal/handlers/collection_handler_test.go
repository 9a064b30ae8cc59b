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

func TestCollectionHandler_PostCollection(t *testing.T) {
	mockService := new(svc_mocks.CollectionService)
	handler := handlers.NewCollectionHandler(mockService, testLogger())

	userID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "valid collection is created",
			body: `{"name":"Business English","color":"#ff8800"}`,
			setupMock: func() {
				mockService.On("PostCollection", mock.Anything, userID, mock.AnythingOfType("*model.PostCollectionRequest")).
					Return(&model.Collection{CollectionID: uuid.New(), UserID: userID, Name: "Business English", Color: "#ff8800"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"name":"Business English"`,
		},
		{
			name:           "missing name fails validation",
			body:           `{"color":"#ff8800"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name:           "non-hex color fails validation",
			body:           `{"name":"Basics","color":"orange"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodPost, "/api/v1/collections", tt.body)
			req = req.WithContext(contextWithUser(req.Context(), userID))
			rr := httptest.NewRecorder()

			handler.PostCollection(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCollectionHandler_GetCollections(t *testing.T) {
	mockService := new(svc_mocks.CollectionService)
	handler := handlers.NewCollectionHandler(mockService, testLogger())

	userID := uuid.New()

	t.Run("nil result renders an empty array", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("GetCollections", mock.Anything, userID).Return(nil, nil).Once()

		req := newJSONRequest(t, http.MethodGet, "/api/v1/collections", nil)
		req = req.WithContext(contextWithUser(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.GetCollections(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", rr.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("missing user context is unauthorized", func(t *testing.T) {
		mockService.Mock = mock.Mock{}

		req := newJSONRequest(t, http.MethodGet, "/api/v1/collections", nil)
		rr := httptest.NewRecorder()

		handler.GetCollections(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCollectionHandler_DeleteCollection(t *testing.T) {
	mockService := new(svc_mocks.CollectionService)
	handler := handlers.NewCollectionHandler(mockService, testLogger())

	userID := uuid.New()
	collectionID := uuid.New()

	tests := []struct {
		name           string
		urlParam       string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "existing collection is deleted",
			urlParam: collectionID.String(),
			setupMock: func() {
				mockService.On("DeleteCollection", mock.Anything, userID, collectionID).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:     "missing collection maps to 404",
			urlParam: collectionID.String(),
			setupMock: func() {
				mockService.On("DeleteCollection", mock.Anything, userID, collectionID).
					Return(model.NewAppError("COLLECTION_NOT_FOUND", "The target collection does not exist.", "collection_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `COLLECTION_NOT_FOUND`,
		},
		{
			name:           "garbage id is a bad request",
			urlParam:       "not-a-uuid",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `INVALID_URL_PARAM`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodDelete, "/api/v1/collections/"+tt.urlParam, nil)
			ctx := contextWithUser(req.Context(), userID)
			ctx = contextWithChiURLParam(ctx, "collection_id", tt.urlParam)
			req = req.WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.DeleteCollection(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
			mockService.AssertExpectations(t)
		})
	}
}
