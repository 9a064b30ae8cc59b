package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"wordnest/internal/config"
	"wordnest/internal/model"
	"wordnest/internal/webutil"
)

// JWTAuthMiddleware validates the Bearer token and stores the authenticated
// user id in the request context.
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("Auth failed: invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header must be a Bearer token.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			token, err := jwt.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.Auth.JWTSecret), nil
			})
			if err != nil {
				logger.Warn("Auth failed: invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The access token is invalid or expired.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				logger.Warn("Auth failed: unknown claims type")
				appErr := model.NewAppError("INVALID_TOKEN", "The access token is invalid.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil {
				logger.Warn("Auth failed: subject claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The access token carries no user identity.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("Auth failed: invalid subject format", "subject", subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The access token carries a malformed user identity.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the authenticated user id placed in the
// context by JWTAuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "No user identity in request context.", "", model.ErrInternalServer)
	}
	return value, nil
}
