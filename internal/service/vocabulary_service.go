package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wordnest/internal/config"
	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/repository"
)

type VocabularyService interface {
	PostEntry(ctx context.Context, userID uuid.UUID, req *model.PostVocabularyRequest) (*model.VocabularyEntry, error)
	GetEntry(ctx context.Context, userID, vocabID uuid.UUID) (*model.VocabularyEntry, error)
	GetEntries(ctx context.Context, userID uuid.UUID) ([]*model.VocabularyEntry, error)
	// GetEntriesByCollection lists entries in one collection, ordered by
	// creation time; a nil collectionID selects the uncategorized entries.
	GetEntriesByCollection(ctx context.Context, userID uuid.UUID, collectionID *uuid.UUID) ([]*model.VocabularyEntry, error)
	PutEntry(ctx context.Context, userID, vocabID uuid.UUID, req *model.PutVocabularyRequest) (*model.VocabularyEntry, error)
	DeleteEntry(ctx context.Context, userID, vocabID uuid.UUID) error
	SetMastered(ctx context.Context, userID, vocabID uuid.UUID, mastered bool) (*model.VocabularyEntry, error)
	// ImportEntries persists a parsed batch atomically and returns the count
	// written. Entries never merge with existing words; duplicates are fine.
	ImportEntries(ctx context.Context, userID uuid.UUID, entries []model.ImportEntryRequest, collectionID *uuid.UUID) (int, error)
}

type vocabularyService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
	collRepo  repository.CollectionRepository
	cfg       *config.Config
}

func NewVocabularyService(db *gorm.DB, vocabRepo repository.VocabularyRepository, collRepo repository.CollectionRepository, cfg *config.Config) VocabularyService {
	return &vocabularyService{db: db, vocabRepo: vocabRepo, collRepo: collRepo, cfg: cfg}
}

// checkCollectionOwned verifies the target collection exists and belongs to
// the user. Keeps dangling collection references out of vocabulary rows.
func (s *vocabularyService) checkCollectionOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, collectionID *uuid.UUID) error {
	if collectionID == nil {
		return nil
	}
	_, err := s.collRepo.FindByID(ctx, db, userID, *collectionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("COLLECTION_NOT_FOUND", "The target collection does not exist.", "collection_id", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return nil
}

func (s *vocabularyService) PostEntry(ctx context.Context, userID uuid.UUID, req *model.PostVocabularyRequest) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())
	var created *model.VocabularyEntry

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkCollectionOwned(ctx, tx, userID, req.CollectionID); err != nil {
			return err
		}

		entry := &model.VocabularyEntry{
			VocabID:      uuid.New(),
			UserID:       userID,
			CollectionID: req.CollectionID,
			Word:         req.Word,
			Meaning:      req.Meaning,
			Example:      req.Example,
		}
		if err := s.vocabRepo.Create(ctx, tx, entry); err != nil {
			logger.Error("Failed to create vocabulary entry", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		created = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary entry created", "vocab_id", created.VocabID.String())
	return created, nil
}

func (s *vocabularyService) GetEntry(ctx context.Context, userID, vocabID uuid.UUID) (*model.VocabularyEntry, error) {
	entry, err := s.vocabRepo.FindByID(ctx, s.db, userID, vocabID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		middleware.GetLogger(ctx).Error("Failed to load vocabulary entry", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return entry, nil
}

func (s *vocabularyService) GetEntries(ctx context.Context, userID uuid.UUID) ([]*model.VocabularyEntry, error) {
	entries, err := s.vocabRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list vocabulary entries", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return entries, nil
}

func (s *vocabularyService) GetEntriesByCollection(ctx context.Context, userID uuid.UUID, collectionID *uuid.UUID) ([]*model.VocabularyEntry, error) {
	if err := s.checkCollectionOwned(ctx, s.db, userID, collectionID); err != nil {
		return nil, err
	}

	entries, err := s.vocabRepo.FindByCollection(ctx, s.db, userID, collectionID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list vocabulary entries by collection", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return entries, nil
}

func (s *vocabularyService) PutEntry(ctx context.Context, userID, vocabID uuid.UUID, req *model.PutVocabularyRequest) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "vocab_id", vocabID.String())
	var updated *model.VocabularyEntry

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkCollectionOwned(ctx, tx, userID, req.CollectionID); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"word":          req.Word,
			"meaning":       req.Meaning,
			"example":       req.Example,
			"collection_id": req.CollectionID,
		}
		if err := s.vocabRepo.Update(ctx, tx, userID, vocabID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Failed to update vocabulary entry", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		var err error
		updated, err = s.vocabRepo.FindByID(ctx, tx, userID, vocabID)
		if err != nil {
			logger.Error("Failed to reload vocabulary entry after update", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary entry updated")
	return updated, nil
}

func (s *vocabularyService) DeleteEntry(ctx context.Context, userID, vocabID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "vocab_id", vocabID.String())

	if err := s.vocabRepo.Delete(ctx, s.db, userID, vocabID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		logger.Error("Failed to delete vocabulary entry", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	logger.Info("Vocabulary entry deleted")
	return nil
}

func (s *vocabularyService) SetMastered(ctx context.Context, userID, vocabID uuid.UUID, mastered bool) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "vocab_id", vocabID.String())
	var updated *model.VocabularyEntry

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.vocabRepo.Update(ctx, tx, userID, vocabID, map[string]interface{}{"mastered": mastered}); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Failed to set mastered flag", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		var err error
		updated, err = s.vocabRepo.FindByID(ctx, tx, userID, vocabID)
		if err != nil {
			logger.Error("Failed to reload vocabulary entry after mastery toggle", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Mastered flag set", "mastered", mastered)
	return updated, nil
}

func (s *vocabularyService) ImportEntries(ctx context.Context, userID uuid.UUID, entries []model.ImportEntryRequest, collectionID *uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())

	if len(entries) == 0 {
		return 0, model.NewAppError("EMPTY_IMPORT", "No vocabulary entries to import.", "vocabulary", model.ErrInvalidInput)
	}
	if len(entries) > s.cfg.App.ImportMaxRows {
		return 0, model.NewAppError("IMPORT_TOO_LARGE", "The import exceeds the maximum batch size.", "vocabulary", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkCollectionOwned(ctx, tx, userID, collectionID); err != nil {
			return err
		}

		batch := make([]*model.VocabularyEntry, 0, len(entries))
		for _, e := range entries {
			entry := &model.VocabularyEntry{
				VocabID:      uuid.New(),
				UserID:       userID,
				CollectionID: collectionID,
				Word:         e.Word,
				Meaning:      e.Meaning,
				Mastered:     false,
			}
			if e.Example != "" {
				example := e.Example
				entry.Example = &example
			}
			batch = append(batch, entry)
		}

		if err := s.vocabRepo.CreateBatch(ctx, tx, batch); err != nil {
			logger.Error("Failed to batch-insert imported vocabulary", "error", err, "count", len(batch))
			return model.NewAppError("INTERNAL_SERVER_ERROR", "The import failed; no entries were written.", "", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Vocabulary imported", "count", len(entries))
	return len(entries), nil
}
