package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wordnest/internal/config"
	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/repository"
)

// AuthService is the thin authentication collaborator: it creates accounts
// and exchanges credentials for a signed access token. Everything downstream
// only ever sees the opaque user id the middleware extracts from that token.
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{db: db, userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already registered", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "This email address is already registered.", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to process the password.", "", err)
		}

		hash := string(hashedPassword)
		user := &model.User{
			UserID:       uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: &hash,
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_EMAIL", "This email address is already registered.", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", newUser.UserID.String())
	return newUser, nil
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("INVALID_CREDENTIALS", "Email or password is incorrect.", "", model.ErrForbidden)
		}
		logger.Error("Failed to look up user for login", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if user.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)) != nil {
		logger.Warn("Login failed: bad credentials", "user_id", user.UserID.String())
		return nil, model.NewAppError("INVALID_CREDENTIALS", "Email or password is incorrect.", "", model.ErrForbidden)
	}

	token, err := s.signToken(user.UserID)
	if err != nil {
		logger.Error("Failed to sign access token", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue the access token.", "", err)
	}

	logger.Info("User logged in", "user_id", user.UserID.String())
	return &model.LoginResponse{AccessToken: token, User: user}, nil
}

func (s *authService) signToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.Auth.TokenTTLMinutes) * time.Minute)),
		Issuer:    config.AppName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JWTSecret))
}
