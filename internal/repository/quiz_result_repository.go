//go:generate mockery --name QuizResultRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wordnest/internal/middleware"
	"wordnest/internal/model"
)

type QuizResultRepository interface {
	Create(ctx context.Context, tx *gorm.DB, result *model.QuizResult) error
	FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.QuizResult, error)
	// AverageScoreByUser returns the unweighted mean of score over all of the
	// user's results, 0 when none exist.
	AverageScoreByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (float64, error)
}

type gormQuizResultRepository struct{}

func NewGormQuizResultRepository() QuizResultRepository {
	return &gormQuizResultRepository{}
}

func (r *gormQuizResultRepository) Create(ctx context.Context, tx *gorm.DB, result *model.QuizResult) error {
	res := tx.WithContext(ctx).Create(result)
	if res.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating quiz result in DB",
			"error", res.Error,
			"user_id", result.UserID.String(),
			"mode", string(result.Mode),
		)
		return fmt.Errorf("gormQuizResultRepository.Create: %w", translateError(res.Error))
	}
	return nil
}

func (r *gormQuizResultRepository) FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.QuizResult, error) {
	var results []*model.QuizResult
	res := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&results)
	if res.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding recent quiz results in DB",
			"error", res.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormQuizResultRepository.FindRecentByUser: %w", res.Error)
	}
	return results, nil
}

func (r *gormQuizResultRepository) AverageScoreByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (float64, error) {
	var avg float64
	res := db.WithContext(ctx).Model(&model.QuizResult{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg)
	if res.Error != nil {
		middleware.GetLogger(ctx).Error("Error averaging quiz scores in DB",
			"error", res.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormQuizResultRepository.AverageScoreByUser: %w", res.Error)
	}
	return avg, nil
}
