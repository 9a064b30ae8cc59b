package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wordnest/internal/handlers"
	"wordnest/internal/importer"
	"wordnest/internal/model"
	svc_mocks "wordnest/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func contextWithUser(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, model.UserIDKey, userID)
}

func contextWithChiURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func TestVocabularyHandler_ImportEntries(t *testing.T) {
	mockService := new(svc_mocks.VocabularyService)
	handler := handlers.NewVocabularyHandler(mockService, testLogger())

	userID := uuid.New()
	collectionID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		withUser       bool
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "valid batch is imported",
			body: model.ImportVocabularyRequest{
				Vocabulary: []model.ImportEntryRequest{
					{Word: "hello", Meaning: "greeting"},
					{Word: "cat", Meaning: "feline", Example: "The cat sat"},
				},
				CollectionID: &collectionID,
			},
			withUser: true,
			setupMock: func() {
				mockService.On("ImportEntries", mock.Anything, userID,
					mock.AnythingOfType("[]model.ImportEntryRequest"), &collectionID).
					Return(2, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"imported":2}`,
		},
		{
			name:           "empty vocabulary list fails validation",
			body:           `{"vocabulary":[]}`,
			withUser:       true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name:           "malformed body is rejected",
			body:           `{"vocabulary": [}`,
			withUser:       true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `INVALID_REQUEST_BODY`,
		},
		{
			name: "unknown collection maps to 404",
			body: model.ImportVocabularyRequest{
				Vocabulary:   []model.ImportEntryRequest{{Word: "hello", Meaning: "greeting"}},
				CollectionID: &collectionID,
			},
			withUser: true,
			setupMock: func() {
				mockService.On("ImportEntries", mock.Anything, userID,
					mock.AnythingOfType("[]model.ImportEntryRequest"), &collectionID).
					Return(0, model.NewAppError("COLLECTION_NOT_FOUND", "The target collection does not exist.", "collection_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `COLLECTION_NOT_FOUND`,
		},
		{
			name: "missing user context is unauthorized",
			body: model.ImportVocabularyRequest{
				Vocabulary: []model.ImportEntryRequest{{Word: "hello", Meaning: "greeting"}},
			},
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

			req := newJSONRequest(t, http.MethodPost, "/api/v1/vocabulary/import", tt.body)
			if tt.withUser {
				req = req.WithContext(contextWithUser(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			handler.ImportEntries(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestVocabularyHandler_PreviewImport(t *testing.T) {
	mockService := new(svc_mocks.VocabularyService)
	handler := handlers.NewVocabularyHandler(mockService, testLogger())

	userID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		check          func(t *testing.T, result importer.ParseResult)
	}{
		{
			name:           "csv preview parses entries and errors",
			body:           model.ImportPreviewRequest{Format: "csv", Data: "hello,greeting\nbad line\ncat,feline,The cat sat"},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, result importer.ParseResult) {
				require.Len(t, result.Entries, 2)
				assert.Equal(t, "hello", result.Entries[0].Word)
				assert.Equal(t, "The cat sat", result.Entries[1].Example)
				require.Len(t, result.Errors, 1)
				assert.Equal(t, "Line 2: Must have at least word and meaning", result.Errors[0])
			},
		},
		{
			name:           "custom delimiter is honored",
			body:           model.ImportPreviewRequest{Format: "csv", Data: "hola;hello, hi", Delimiter: ";"},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, result importer.ParseResult) {
				require.Len(t, result.Entries, 1)
				assert.Equal(t, "hello, hi", result.Entries[0].Meaning)
			},
		},
		{
			name:           "json preview",
			body:           model.ImportPreviewRequest{Format: "json", Data: `[{"word":"hello","meaning":"greeting"}]`},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, result importer.ParseResult) {
				require.Len(t, result.Entries, 1)
				assert.Empty(t, result.Errors)
			},
		},
		{
			name:           "broken json is a whole-batch error",
			body:           model.ImportPreviewRequest{Format: "json", Data: `{"not":"an array"}`},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, result importer.ParseResult) {
				assert.Empty(t, result.Entries)
				require.Len(t, result.Errors, 1)
				assert.Equal(t, "JSON must be an array of vocabulary objects", result.Errors[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(t, http.MethodPost, "/api/v1/vocabulary/import/preview", tt.body)
			req = req.WithContext(contextWithUser(req.Context(), userID))
			rr := httptest.NewRecorder()

			handler.PreviewImport(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)
			var result importer.ParseResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
			tt.check(t, result)
		})
	}

	t.Run("unknown format fails validation", func(t *testing.T) {
		req := newJSONRequest(t, http.MethodPost, "/api/v1/vocabulary/import/preview",
			model.ImportPreviewRequest{Format: "xml", Data: "<words/>"})
		req = req.WithContext(contextWithUser(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.PreviewImport(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "VALIDATION_ERROR")
	})
}

func TestVocabularyHandler_GetEntriesByCollection(t *testing.T) {
	mockService := new(svc_mocks.VocabularyService)
	handler := handlers.NewVocabularyHandler(mockService, testLogger())

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
			name:     "collection id selects its entries",
			urlParam: collectionID.String(),
			setupMock: func() {
				entries := []*model.VocabularyEntry{
					{VocabID: uuid.New(), UserID: userID, CollectionID: &collectionID, Word: "hello", Meaning: "greeting"},
				}
				mockService.On("GetEntriesByCollection", mock.Anything, userID, &collectionID).
					Return(entries, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"word":"hello"`,
		},
		{
			name:     "uncategorized sentinel selects entries with no collection",
			urlParam: "uncategorized",
			setupMock: func() {
				mockService.On("GetEntriesByCollection", mock.Anything, userID, (*uuid.UUID)(nil)).
					Return([]*model.VocabularyEntry{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "garbage id is a bad request",
			urlParam:       "not-a-uuid",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `INVALID_URL_PARAM`,
		},
		{
			name:     "unknown collection maps to 404",
			urlParam: collectionID.String(),
			setupMock: func() {
				mockService.On("GetEntriesByCollection", mock.Anything, userID, &collectionID).
					Return(nil, model.NewAppError("COLLECTION_NOT_FOUND", "The target collection does not exist.", "collection_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `COLLECTION_NOT_FOUND`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodGet, "/api/v1/collections/"+tt.urlParam+"/vocabulary/words", nil)
			ctx := contextWithUser(req.Context(), userID)
			ctx = contextWithChiURLParam(ctx, "collection_id", tt.urlParam)
			req = req.WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.GetEntriesByCollection(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestVocabularyHandler_PatchMastered(t *testing.T) {
	mockService := new(svc_mocks.VocabularyService)
	handler := handlers.NewVocabularyHandler(mockService, testLogger())

	userID := uuid.New()
	vocabID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "mastered true is applied",
			body: `{"mastered": true}`,
			setupMock: func() {
				mockService.On("SetMastered", mock.Anything, userID, vocabID, true).
					Return(&model.VocabularyEntry{VocabID: vocabID, UserID: userID, Mastered: true}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"mastered":true`,
		},
		{
			name: "mastered false is applied",
			body: `{"mastered": false}`,
			setupMock: func() {
				mockService.On("SetMastered", mock.Anything, userID, vocabID, false).
					Return(&model.VocabularyEntry{VocabID: vocabID, UserID: userID, Mastered: false}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"mastered":false`,
		},
		{
			name:           "missing mastered field fails validation",
			body:           `{}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name: "missing entry maps to 404",
			body: `{"mastered": true}`,
			setupMock: func() {
				mockService.On("SetMastered", mock.Anything, userID, vocabID, true).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodPatch, "/api/v1/vocabulary/"+vocabID.String()+"/mastered", tt.body)
			ctx := contextWithUser(req.Context(), userID)
			ctx = contextWithChiURLParam(ctx, "vocab_id", vocabID.String())
			req = req.WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.PatchMastered(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
			mockService.AssertExpectations(t)
		})
	}
}
