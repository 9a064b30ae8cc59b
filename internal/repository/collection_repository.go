//go:generate mockery --name CollectionRepository --output ./mocks --outpkg mocks --case=underscore
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

type CollectionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, collection *model.Collection) error
	FindByID(ctx context.Context, db *gorm.DB, userID, collectionID uuid.UUID) (*model.Collection, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Collection, error)
	Update(ctx context.Context, tx *gorm.DB, userID, collectionID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, collectionID uuid.UUID) error
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormCollectionRepository struct{}

func NewGormCollectionRepository() CollectionRepository {
	return &gormCollectionRepository{}
}

func (r *gormCollectionRepository) Create(ctx context.Context, tx *gorm.DB, collection *model.Collection) error {
	result := tx.WithContext(ctx).Create(collection)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating collection in DB",
			"error", result.Error,
			"user_id", collection.UserID.String(),
			"name", collection.Name,
		)
		return fmt.Errorf("gormCollectionRepository.Create: %w", translateError(result.Error))
	}
	return nil
}

func (r *gormCollectionRepository) FindByID(ctx context.Context, db *gorm.DB, userID, collectionID uuid.UUID) (*model.Collection, error) {
	var collection model.Collection
	result := db.WithContext(ctx).Where("user_id = ? AND collection_id = ?", userID, collectionID).First(&collection)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding collection by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"collection_id", collectionID.String(),
		)
		return nil, fmt.Errorf("gormCollectionRepository.FindByID: %w", result.Error)
	}
	return &collection, nil
}

func (r *gormCollectionRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Collection, error) {
	var collections []*model.Collection
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&collections)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding collections by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormCollectionRepository.FindByUser: %w", result.Error)
	}
	return collections, nil
}

func (r *gormCollectionRepository) Update(ctx context.Context, tx *gorm.DB, userID, collectionID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Collection{}).
		Where("user_id = ? AND collection_id = ?", userID, collectionID).
		Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating collection in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"collection_id", collectionID.String(),
		)
		return fmt.Errorf("gormCollectionRepository.Update: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCollectionRepository) Delete(ctx context.Context, tx *gorm.DB, userID, collectionID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("user_id = ? AND collection_id = ?", userID, collectionID).
		Delete(&model.Collection{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting collection in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"collection_id", collectionID.String(),
		)
		return fmt.Errorf("gormCollectionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCollectionRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Collection{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error counting collections in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormCollectionRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}
