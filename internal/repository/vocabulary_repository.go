//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
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

type VocabularyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.VocabularyEntry) error
	CreateBatch(ctx context.Context, tx *gorm.DB, entries []*model.VocabularyEntry) error
	FindByID(ctx context.Context, db *gorm.DB, userID, vocabID uuid.UUID) (*model.VocabularyEntry, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.VocabularyEntry, error)
	// FindByCollection lists entries in one collection; a nil collectionID
	// selects the uncategorized entries (collection_id IS NULL).
	FindByCollection(ctx context.Context, db *gorm.DB, userID uuid.UUID, collectionID *uuid.UUID) ([]*model.VocabularyEntry, error)
	Update(ctx context.Context, tx *gorm.DB, userID, vocabID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, vocabID uuid.UUID) error
	// DetachCollection nulls collection_id on every entry referencing the
	// collection, preserving the entries themselves.
	DetachCollection(ctx context.Context, tx *gorm.DB, userID, collectionID uuid.UUID) error
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	CountMasteredByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

func (r *gormVocabularyRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.VocabularyEntry) error {
	result := tx.WithContext(ctx).Create(entry)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating vocabulary entry in DB",
			"error", result.Error,
			"user_id", entry.UserID.String(),
			"word", entry.Word,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", translateError(result.Error))
	}
	return nil
}

func (r *gormVocabularyRepository) CreateBatch(ctx context.Context, tx *gorm.DB, entries []*model.VocabularyEntry) error {
	if len(entries) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(&entries)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error batch-creating vocabulary entries in DB",
			"error", result.Error,
			"count", len(entries),
		)
		return fmt.Errorf("gormVocabularyRepository.CreateBatch: %w", translateError(result.Error))
	}
	return nil
}

func (r *gormVocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, userID, vocabID uuid.UUID) (*model.VocabularyEntry, error) {
	var entry model.VocabularyEntry
	result := db.WithContext(ctx).Where("user_id = ? AND vocab_id = ?", userID, vocabID).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding vocabulary entry by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"vocab_id", vocabID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByID: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormVocabularyRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.VocabularyEntry, error) {
	var entries []*model.VocabularyEntry
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&entries)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding vocabulary entries by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByUser: %w", result.Error)
	}
	return entries, nil
}

func (r *gormVocabularyRepository) FindByCollection(ctx context.Context, db *gorm.DB, userID uuid.UUID, collectionID *uuid.UUID) ([]*model.VocabularyEntry, error) {
	var entries []*model.VocabularyEntry
	query := db.WithContext(ctx).Where("user_id = ?", userID)
	if collectionID != nil {
		query = query.Where("collection_id = ?", *collectionID)
	} else {
		query = query.Where("collection_id IS NULL")
	}
	result := query.Order("created_at ASC").Find(&entries)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding vocabulary entries by collection in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByCollection: %w", result.Error)
	}
	return entries, nil
}

func (r *gormVocabularyRepository) Update(ctx context.Context, tx *gorm.DB, userID, vocabID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.VocabularyEntry{}).
		Where("user_id = ? AND vocab_id = ?", userID, vocabID).
		Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating vocabulary entry in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"vocab_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Update: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) Delete(ctx context.Context, tx *gorm.DB, userID, vocabID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("user_id = ? AND vocab_id = ?", userID, vocabID).
		Delete(&model.VocabularyEntry{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting vocabulary entry in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"vocab_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) DetachCollection(ctx context.Context, tx *gorm.DB, userID, collectionID uuid.UUID) error {
	result := tx.WithContext(ctx).Model(&model.VocabularyEntry{}).
		Where("user_id = ? AND collection_id = ?", userID, collectionID).
		Update("collection_id", nil)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error detaching vocabulary entries from collection in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"collection_id", collectionID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.DetachCollection: %w", result.Error)
	}
	return nil
}

func (r *gormVocabularyRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyEntry{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error counting vocabulary entries in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormVocabularyRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormVocabularyRepository) CountMasteredByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyEntry{}).
		Where("user_id = ? AND mastered = ?", userID, true).
		Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error counting mastered vocabulary entries in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormVocabularyRepository.CountMasteredByUser: %w", result.Error)
	}
	return count, nil
}
