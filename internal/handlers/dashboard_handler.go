package handlers

import (
	"log/slog"
	"net/http"

	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/service"
	"wordnest/internal/webutil"
)

type DashboardHandler struct {
	service service.DashboardService
	logger  *slog.Logger
}

func NewDashboardHandler(s service.DashboardService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{service: s, logger: logger}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		logger.Error("Error building dashboard stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
