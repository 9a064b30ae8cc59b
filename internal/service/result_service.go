package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wordnest/internal/config"
	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/repository"
)

// ResultService persists finalized study sessions and keeps the per-(user,
// collection) progress counters rolled up. The result insert and the progress
// rollup are two sequential writes, not one transaction: a crash between them
// loses one rollup increment, which the usage model tolerates.
type ResultService interface {
	SubmitResult(ctx context.Context, userID uuid.UUID, req *model.SubmitResultRequest) (*model.QuizResult, error)
	GetRecentResults(ctx context.Context, userID uuid.UUID, limit int) ([]*model.QuizResult, error)
	GetProgress(ctx context.Context, userID uuid.UUID) ([]*model.ProgressRecord, error)
}

type resultService struct {
	db         *gorm.DB
	resultRepo repository.QuizResultRepository
	progRepo   repository.ProgressRepository
	cfg        *config.Config
}

func NewResultService(db *gorm.DB, resultRepo repository.QuizResultRepository, progRepo repository.ProgressRepository, cfg *config.Config) ResultService {
	return &resultService{db: db, resultRepo: resultRepo, progRepo: progRepo, cfg: cfg}
}

func (s *resultService) SubmitResult(ctx context.Context, userID uuid.UUID, req *model.SubmitResultRequest) (*model.QuizResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "mode", string(req.Mode))

	correct := *req.CorrectAnswers
	if correct > req.TotalQuestions {
		return nil, model.NewAppError("VALIDATION_ERROR", "correct_answers cannot exceed total_questions.", "correct_answers", model.ErrInvalidInput)
	}

	now := time.Now()
	result := &model.QuizResult{
		ResultID:       uuid.New(),
		UserID:         userID,
		CollectionID:   req.CollectionID,
		Mode:           req.Mode,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: correct,
		// Recomputed here so the stored invariant holds no matter what the
		// client sent.
		Score:       float64(correct) / float64(req.TotalQuestions) * 100,
		CompletedAt: now,
	}

	if err := s.resultRepo.Create(ctx, s.db, result); err != nil {
		logger.Error("Failed to persist quiz result", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save the result.", "", err)
	}

	// Ad-hoc sessions across all vocabulary carry no collection and update no
	// progress record.
	if req.CollectionID != nil {
		if err := s.rollupProgress(ctx, userID, *req.CollectionID, correct, now); err != nil {
			logger.Error("Failed to roll up progress", "error", err, "collection_id", req.CollectionID.String())
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update progress.", "", err)
		}
	}

	logger.Info("Quiz result submitted", "score", result.Score)
	return result, nil
}

// rollupProgress lazily creates or increments the (user, collection) counter
// pair: one more quiz, the session's correct answers added, last_studied
// touched.
func (s *resultService) rollupProgress(ctx context.Context, userID, collectionID uuid.UUID, correct int, now time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := s.progRepo.FindByCollection(ctx, tx, userID, collectionID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if errors.Is(err, model.ErrNotFound) {
			return s.progRepo.Create(ctx, tx, &model.ProgressRecord{
				ProgressID:     uuid.New(),
				UserID:         userID,
				CollectionID:   collectionID,
				TotalQuizzes:   1,
				CorrectAnswers: correct,
				LastStudied:    now,
			})
		}

		record.TotalQuizzes++
		record.CorrectAnswers += correct
		record.LastStudied = now
		return s.progRepo.Update(ctx, tx, record)
	})
}

func (s *resultService) GetRecentResults(ctx context.Context, userID uuid.UUID, limit int) ([]*model.QuizResult, error) {
	if limit <= 0 {
		limit = s.cfg.App.RecentActivityLimit
	}
	if limit > s.cfg.App.MaxResultsLimit {
		limit = s.cfg.App.MaxResultsLimit
	}

	results, err := s.resultRepo.FindRecentByUser(ctx, s.db, userID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list recent results", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return results, nil
}

func (s *resultService) GetProgress(ctx context.Context, userID uuid.UUID) ([]*model.ProgressRecord, error) {
	records, err := s.progRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list progress records", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return records, nil
}
