package handlers

import (
	"log/slog"
	"net/http"

	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/tts"
	"wordnest/internal/webutil"
)

type SpeechHandler struct {
	client *tts.Client
	logger *slog.Logger
}

func NewSpeechHandler(client *tts.Client, logger *slog.Logger) *SpeechHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpeechHandler{client: client, logger: logger}
}

// Synthesize proxies text to the speech backend and streams the audio
// bytes back with the backend's content type.
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Synthesize"))

	if _, err := middleware.GetUserIDFromContext(r.Context()); err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden))
		return
	}

	var req model.SpeechRequest
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

	audio, contentType, err := h.client.Synthesize(r.Context(), req.Text)
	if err != nil {
		logger.Error("Speech synthesis failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		logger.Error("Failed to write audio response", slog.Any("error", err))
	}
}
