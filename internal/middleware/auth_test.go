package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnest/internal/config"
	"wordnest/internal/model"
)

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLMinutes = 60
	return cfg
}

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := authTestConfig()
	userID := uuid.New()

	var capturedUserID uuid.UUID
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		capturedUserID, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := JWTAuthMiddleware(cfg)(next)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
		wantNext       bool
	}{
		{
			name:           "valid token passes the user id through",
			authHeader:     "Bearer " + signToken(t, cfg.Auth.JWTSecret, userID.String(), time.Now().Add(time.Hour)),
			expectedStatus: http.StatusOK,
			wantNext:       true,
		},
		{
			name:           "missing header is rejected",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `UNAUTHORIZED`,
		},
		{
			name:           "non-bearer scheme is rejected",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `UNAUTHORIZED`,
		},
		{
			name:           "expired token is rejected",
			authHeader:     "Bearer " + signToken(t, cfg.Auth.JWTSecret, userID.String(), time.Now().Add(-time.Hour)),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `INVALID_TOKEN`,
		},
		{
			name:           "token signed with another secret is rejected",
			authHeader:     "Bearer " + signToken(t, "other-secret", userID.String(), time.Now().Add(time.Hour)),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `INVALID_TOKEN`,
		},
		{
			name:           "non-uuid subject is rejected",
			authHeader:     "Bearer " + signToken(t, cfg.Auth.JWTSecret, "not-a-uuid", time.Now().Add(time.Hour)),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `INVALID_TOKEN`,
		},
		{
			name:           "garbage token is rejected",
			authHeader:     "Bearer not.a.jwt",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `INVALID_TOKEN`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled = false
			capturedUserID = uuid.Nil

			req := httptest.NewRequest(http.MethodGet, "/api/v1/collections", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			protected.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
			if tt.wantNext {
				assert.Equal(t, userID, capturedUserID)
			}
		})
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	t.Run("returns the stored id", func(t *testing.T) {
		userID := uuid.New()
		ctx := context.WithValue(context.Background(), model.UserIDKey, userID)

		got, err := GetUserIDFromContext(ctx)

		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("fails when no id was stored", func(t *testing.T) {
		_, err := GetUserIDFromContext(context.Background())

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
	})
}
