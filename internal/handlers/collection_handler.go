package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/service"
	"wordnest/internal/webutil"
)

type CollectionHandler struct {
	service service.CollectionService
	logger  *slog.Logger
}

func NewCollectionHandler(s service.CollectionService, logger *slog.Logger) *CollectionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CollectionHandler{service: s, logger: logger}
}

func (h *CollectionHandler) PostCollection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCollection"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	var req model.PostCollectionRequest
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

	collection, err := h.service.PostCollection(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating collection in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, collection, logger)
}

func (h *CollectionHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCollections"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	collections, err := h.service.GetCollections(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing collections in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if collections == nil {
		collections = []*model.Collection{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, collections, logger)
}

func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCollection"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	collectionID, err := uuid.Parse(chi.URLParam(r, "collection_id"))
	if err != nil {
		logger.Warn("Invalid collection ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "collection_id is malformed.", "collection_id", model.ErrInvalidInput))
		return
	}

	collection, err := h.service.GetCollection(r.Context(), userID, collectionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, collection, logger)
}

func (h *CollectionHandler) PutCollection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutCollection"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	collectionID, err := uuid.Parse(chi.URLParam(r, "collection_id"))
	if err != nil {
		logger.Warn("Invalid collection ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "collection_id is malformed.", "collection_id", model.ErrInvalidInput))
		return
	}

	var req model.PutCollectionRequest
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

	collection, err := h.service.PutCollection(r.Context(), userID, collectionID, &req)
	if err != nil {
		logger.Error("Error updating collection in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, collection, logger)
}

func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCollection"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	collectionID, err := uuid.Parse(chi.URLParam(r, "collection_id"))
	if err != nil {
		logger.Warn("Invalid collection ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "collection_id is malformed.", "collection_id", model.ErrInvalidInput))
		return
	}

	if err := h.service.DeleteCollection(r.Context(), userID, collectionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Collection deleted", slog.String("collection_id", collectionID.String()))
	w.WriteHeader(http.StatusNoContent)
}
