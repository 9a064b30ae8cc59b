package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wordnest/internal/importer"
	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/service"
	"wordnest/internal/webutil"
)

type VocabularyHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewVocabularyHandler(s service.VocabularyService, logger *slog.Logger) *VocabularyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyHandler{service: s, logger: logger}
}

func (h *VocabularyHandler) PostEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostEntry"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	var req model.PostVocabularyRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validate(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.PostEntry(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating vocabulary entry in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, entry, logger)
}

func (h *VocabularyHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEntries"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	entries, err := h.service.GetEntries(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if entries == nil {
		entries = []*model.VocabularyEntry{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// GetEntriesByCollection handles GET /collections/{collection_id}/vocabulary/words.
// The literal path segment "uncategorized" selects entries with no collection.
func (h *VocabularyHandler) GetEntriesByCollection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEntriesByCollection"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	var collectionID *uuid.UUID
	if param := chi.URLParam(r, "collection_id"); param != "uncategorized" {
		id, err := uuid.Parse(param)
		if err != nil {
			logger.Warn("Invalid collection ID in URL", slog.String("error", err.Error()))
			webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "collection_id is malformed.", "collection_id", model.ErrInvalidInput))
			return
		}
		collectionID = &id
	}

	entries, err := h.service.GetEntriesByCollection(r.Context(), userID, collectionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if entries == nil {
		entries = []*model.VocabularyEntry{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

func (h *VocabularyHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEntry"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	vocabID, err := uuid.Parse(chi.URLParam(r, "vocab_id"))
	if err != nil {
		logger.Warn("Invalid vocabulary ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "vocab_id is malformed.", "vocab_id", model.ErrInvalidInput))
		return
	}

	entry, err := h.service.GetEntry(r.Context(), userID, vocabID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

func (h *VocabularyHandler) PutEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutEntry"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	vocabID, err := uuid.Parse(chi.URLParam(r, "vocab_id"))
	if err != nil {
		logger.Warn("Invalid vocabulary ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "vocab_id is malformed.", "vocab_id", model.ErrInvalidInput))
		return
	}

	var req model.PutVocabularyRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validate(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.PutEntry(r.Context(), userID, vocabID, &req)
	if err != nil {
		logger.Error("Error updating vocabulary entry in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

func (h *VocabularyHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteEntry"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	vocabID, err := uuid.Parse(chi.URLParam(r, "vocab_id"))
	if err != nil {
		logger.Warn("Invalid vocabulary ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "vocab_id is malformed.", "vocab_id", model.ErrInvalidInput))
		return
	}

	if err := h.service.DeleteEntry(r.Context(), userID, vocabID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary entry deleted", slog.String("vocab_id", vocabID.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *VocabularyHandler) PatchMastered(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchMastered"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	vocabID, err := uuid.Parse(chi.URLParam(r, "vocab_id"))
	if err != nil {
		logger.Warn("Invalid vocabulary ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "vocab_id is malformed.", "vocab_id", model.ErrInvalidInput))
		return
	}

	var req model.PatchMasteredRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validate(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.SetMastered(r.Context(), userID, vocabID, *req.Mastered)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

func (h *VocabularyHandler) ImportEntries(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ImportEntries"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	var req model.ImportVocabularyRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validate(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	imported, err := h.service.ImportEntries(r.Context(), userID, req.Vocabulary, req.CollectionID)
	if err != nil {
		logger.Error("Error importing vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary imported", slog.Int("count", imported))
	webutil.RespondWithJSON(w, http.StatusCreated, model.ImportResponse{Imported: imported}, logger)
}

// PreviewImport parses raw import text without persisting anything. The
// caller supplies the format and, for delimited text, the delimiter.
func (h *VocabularyHandler) PreviewImport(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PreviewImport"))

	if _, err := middleware.GetUserIDFromContext(r.Context()); err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	var req model.ImportPreviewRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validate(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var result *importer.ParseResult
	switch req.Format {
	case "json":
		result = importer.ParseJSON([]byte(req.Data))
	default:
		delimiter := importer.DefaultDelimiter
		if req.Delimiter != "" {
			delimiter = []rune(req.Delimiter)[0]
		}
		result = importer.ParseDelimited(req.Data, delimiter)
	}

	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
