package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wordnest/internal/config"
	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/repository"
)

type DashboardService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error)
}

type dashboardService struct {
	db         *gorm.DB
	vocabRepo  repository.VocabularyRepository
	collRepo   repository.CollectionRepository
	resultRepo repository.QuizResultRepository
	cfg        *config.Config
}

func NewDashboardService(db *gorm.DB, vocabRepo repository.VocabularyRepository, collRepo repository.CollectionRepository, resultRepo repository.QuizResultRepository, cfg *config.Config) DashboardService {
	return &dashboardService{db: db, vocabRepo: vocabRepo, collRepo: collRepo, resultRepo: resultRepo, cfg: cfg}
}

func (s *dashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())

	totalWords, err := s.vocabRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count vocabulary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	wordsLearned, err := s.vocabRepo.CountMasteredByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count mastered vocabulary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	totalCollections, err := s.collRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count collections", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	averageAccuracy, err := s.resultRepo.AverageScoreByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to average quiz scores", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	recent, err := s.resultRepo.FindRecentByUser(ctx, s.db, userID, s.cfg.App.RecentActivityLimit)
	if err != nil {
		logger.Error("Failed to list recent activity", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	if recent == nil {
		recent = []*model.QuizResult{}
	}

	return &model.DashboardStats{
		TotalWords:       totalWords,
		TotalCollections: totalCollections,
		WordsLearned:     wordsLearned,
		AverageAccuracy:  averageAccuracy,
		// Streak tracking is a placeholder; it always reports zero.
		StudyStreak:    0,
		RecentActivity: recent,
	}, nil
}
