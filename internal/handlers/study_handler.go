package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/service"
	"wordnest/internal/webutil"
)

type StudyHandler struct {
	service service.StudyService
	logger  *slog.Logger
}

func NewStudyHandler(s service.StudyService, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{service: s, logger: logger}
}

// GetSession handles GET /study/session?mode=&collection_id=.
// Omitting collection_id studies all of the user's words; the literal
// value "uncategorized" selects words with no collection.
func (h *StudyHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSession"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	mode := model.StudyMode(r.URL.Query().Get("mode"))
	if !mode.Valid() {
		logger.Warn("Invalid study mode requested", slog.String("mode", string(mode)))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_STUDY_MODE", "mode must be one of quiz, flashcard, spelling.", "mode", model.ErrInvalidInput))
		return
	}

	var scope *service.CollectionScope
	if param := r.URL.Query().Get("collection_id"); param != "" {
		scope = &service.CollectionScope{}
		if param != "uncategorized" {
			id, err := uuid.Parse(param)
			if err != nil {
				logger.Warn("Invalid collection ID in query", slog.String("error", err.Error()))
				webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "collection_id is malformed.", "collection_id", model.ErrInvalidInput))
				return
			}
			scope.CollectionID = &id
		}
	}

	session, err := h.service.BuildSession(r.Context(), userID, mode, scope)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}
