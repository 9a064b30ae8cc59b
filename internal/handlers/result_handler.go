package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/service"
	"wordnest/internal/webutil"
)

type ResultHandler struct {
	service service.ResultService
	logger  *slog.Logger
}

func NewResultHandler(s service.ResultService, logger *slog.Logger) *ResultHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResultHandler{service: s, logger: logger}
}

func (h *ResultHandler) PostResult(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostResult"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	var req model.SubmitResultRequest
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

	result, err := h.service.SubmitResult(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error submitting quiz result in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}

func (h *ResultHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetResults"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			logger.Warn("Invalid limit in query", slog.String("limit", raw))
			webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "limit must be a non-negative integer.", "limit", model.ErrInvalidInput))
			return
		}
	}

	results, err := h.service.GetRecentResults(r.Context(), userID, limit)
	if err != nil {
		logger.Error("Error listing quiz results in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if results == nil {
		results = []*model.QuizResult{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, results, logger)
}

func (h *ResultHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	records, err := h.service.GetProgress(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if records == nil {
		records = []*model.ProgressRecord{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}
