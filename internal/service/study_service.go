package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/repository"
	"wordnest/internal/study"
)

// StudyService builds study sessions from a user's word set. The session
// itself is ephemeral: it is generated, handed to the client, and never
// persisted; only the finalized outcome comes back as a quiz result.
type StudyService interface {
	// BuildSession assembles a session for the given mode. scope selects the
	// word set: nil for all words, otherwise one collection (a scope with a
	// nil CollectionID selects the uncategorized entries).
	BuildSession(ctx context.Context, userID uuid.UUID, mode model.StudyMode, scope *CollectionScope) (*study.Session, error)
}

// CollectionScope narrows a word set to one collection. A nil CollectionID
// means the uncategorized entries.
type CollectionScope struct {
	CollectionID *uuid.UUID
}

type studyService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
	collRepo  repository.CollectionRepository
}

func NewStudyService(db *gorm.DB, vocabRepo repository.VocabularyRepository, collRepo repository.CollectionRepository) StudyService {
	return &studyService{db: db, vocabRepo: vocabRepo, collRepo: collRepo}
}

func (s *studyService) BuildSession(ctx context.Context, userID uuid.UUID, mode model.StudyMode, scope *CollectionScope) (*study.Session, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "mode", string(mode))

	if !mode.Valid() {
		return nil, model.NewAppError("INVALID_MODE", "Unknown study mode.", "mode", model.ErrInvalidInput)
	}

	var entries []*model.VocabularyEntry
	var err error
	if scope == nil {
		entries, err = s.vocabRepo.FindByUser(ctx, s.db, userID)
	} else {
		if scope.CollectionID != nil {
			if _, cerr := s.collRepo.FindByID(ctx, s.db, userID, *scope.CollectionID); cerr != nil {
				if errors.Is(cerr, model.ErrNotFound) {
					return nil, model.NewAppError("COLLECTION_NOT_FOUND", "The collection does not exist.", "collection_id", model.ErrNotFound)
				}
				return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", cerr)
			}
		}
		entries, err = s.vocabRepo.FindByCollection(ctx, s.db, userID, scope.CollectionID)
	}
	if err != nil {
		logger.Error("Failed to load word set for session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	words := make([]study.Word, 0, len(entries))
	for _, e := range entries {
		w := study.Word{Word: e.Word, Meaning: e.Meaning}
		if e.Example != nil {
			w.Example = *e.Example
		}
		words = append(words, w)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session, err := study.New(mode, words, rng)
	if err != nil {
		if errors.Is(err, model.ErrInsufficientData) {
			logger.Info("Not enough words for session", "count", len(words))
			return nil, model.NewAppError("INSUFFICIENT_DATA", "Not enough words to start this study mode.", "", model.ErrInsufficientData)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	logger.Info("Study session built", "items", session.Len())
	return session, nil
}
