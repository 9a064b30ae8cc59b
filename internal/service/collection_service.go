package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/repository"
)

type CollectionService interface {
	PostCollection(ctx context.Context, userID uuid.UUID, req *model.PostCollectionRequest) (*model.Collection, error)
	GetCollection(ctx context.Context, userID, collectionID uuid.UUID) (*model.Collection, error)
	GetCollections(ctx context.Context, userID uuid.UUID) ([]*model.Collection, error)
	PutCollection(ctx context.Context, userID, collectionID uuid.UUID, req *model.PutCollectionRequest) (*model.Collection, error)
	DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error
}

type collectionService struct {
	db        *gorm.DB
	collRepo  repository.CollectionRepository
	vocabRepo repository.VocabularyRepository
}

func NewCollectionService(db *gorm.DB, collRepo repository.CollectionRepository, vocabRepo repository.VocabularyRepository) CollectionService {
	return &collectionService{db: db, collRepo: collRepo, vocabRepo: vocabRepo}
}

func (s *collectionService) PostCollection(ctx context.Context, userID uuid.UUID, req *model.PostCollectionRequest) (*model.Collection, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())

	collection := &model.Collection{
		CollectionID: uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Color:        req.Color,
	}
	if err := s.collRepo.Create(ctx, s.db, collection); err != nil {
		logger.Error("Failed to create collection", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	logger.Info("Collection created", "collection_id", collection.CollectionID.String())
	return collection, nil
}

func (s *collectionService) GetCollection(ctx context.Context, userID, collectionID uuid.UUID) (*model.Collection, error) {
	collection, err := s.collRepo.FindByID(ctx, s.db, userID, collectionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		middleware.GetLogger(ctx).Error("Failed to load collection", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return collection, nil
}

func (s *collectionService) GetCollections(ctx context.Context, userID uuid.UUID) ([]*model.Collection, error) {
	collections, err := s.collRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list collections", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return collections, nil
}

func (s *collectionService) PutCollection(ctx context.Context, userID, collectionID uuid.UUID, req *model.PutCollectionRequest) (*model.Collection, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "collection_id", collectionID.String())
	var updated *model.Collection

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"color":       req.Color,
		}
		if err := s.collRepo.Update(ctx, tx, userID, collectionID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Failed to update collection", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		var err error
		updated, err = s.collRepo.FindByID(ctx, tx, userID, collectionID)
		if err != nil {
			logger.Error("Failed to reload collection after update", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Collection updated")
	return updated, nil
}

// DeleteCollection removes the collection and detaches its vocabulary in one
// transaction. Entries survive as uncategorized; deletion never cascades.
func (s *collectionService) DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "collection_id", collectionID.String())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.collRepo.FindByID(ctx, tx, userID, collectionID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Failed to load collection for deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		if err := s.vocabRepo.DetachCollection(ctx, tx, userID, collectionID); err != nil {
			logger.Error("Failed to detach vocabulary from collection", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		if err := s.collRepo.Delete(ctx, tx, userID, collectionID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Failed to delete collection", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Collection deleted")
	return nil
}
