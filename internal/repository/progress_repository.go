//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wordnest/internal/middleware"
	"wordnest/internal/model"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *model.ProgressRecord) error
	FindByCollection(ctx context.Context, db *gorm.DB, userID, collectionID uuid.UUID) (*model.ProgressRecord, error)
	Update(ctx context.Context, tx *gorm.DB, record *model.ProgressRecord) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.ProgressRecord, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, record *model.ProgressRecord) error {
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating progress record in DB",
			"error", result.Error,
			"user_id", record.UserID.String(),
			"collection_id", record.CollectionID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Create: %w", translateError(result.Error))
	}
	return nil
}

func (r *gormProgressRepository) FindByCollection(ctx context.Context, db *gorm.DB, userID, collectionID uuid.UUID) (*model.ProgressRecord, error) {
	var record model.ProgressRecord
	result := db.WithContext(ctx).
		Where("user_id = ? AND collection_id = ?", userID, collectionID).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding progress record in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"collection_id", collectionID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByCollection: %w", result.Error)
	}
	return &record, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, record *model.ProgressRecord) error {
	result := tx.WithContext(ctx).Save(record)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating progress record in DB",
			"error", result.Error,
			"progress_id", record.ProgressID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Update: %w", translateError(result.Error))
	}
	return nil
}

func (r *gormProgressRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.ProgressRecord, error) {
	var records []*model.ProgressRecord
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_studied DESC").
		Find(&records)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding progress records by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUser: %w", result.Error)
	}
	return records, nil
}
