package delete_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
)

const (
	// Контрактные строки, фронтенд сверяет их дословно
	msgMissingEventID = "Event ID is required"
	msgEventNotFound  = "Event not found"

	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /delete-event
// Body: {"eventId": 42}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /delete-event - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.EventID == 0 {
		h.logger.Warn("DELETE /delete-event - Missing event ID")
		handlers.RespondBadRequest(w, msgMissingEventID)
		return
	}

	if err := h.service.Delete(r.Context(), req.EventID); err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("DELETE /delete-event - Event not found: event_id=%d", req.EventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		default:
			h.logger.Error("DELETE /delete-event - Failed to delete event: event_id=%d, error=%v",
				req.EventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /delete-event - Event deleted successfully: event_id=%d", req.EventID)
	handlers.RespondSuccess(w)
}
