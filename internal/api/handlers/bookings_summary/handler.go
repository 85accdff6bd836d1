package bookings_summary

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
)

const (
	msgMissingDates = "startDate and endDate are required"
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange = "endDate must not be before startDate"
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

// Handle GET /bookings-summary
// Query params: startDate, endDate (required, YYYY-MM-DD, включительный диапазон)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /bookings-summary - Missing dates: startDate=%q, endDate=%q", startStr, endStr)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, endDate, err := ParseDateRange(startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /bookings-summary - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.SummaryByRange(r.Context(), startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidDateRange):
			h.logger.Warn("GET /bookings-summary - Invalid range: startDate=%s, endDate=%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("GET /bookings-summary - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings-summary - Failed to get summary: startDate=%s, endDate=%s, error=%v",
				startStr, endStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings-summary - Summary retrieved successfully: period=%s to %s, dates=%d",
		startStr, endStr, len(result.Counts))
	// Ответ - плоский JSON объект {"YYYY-MM-DD": count}, даты без событий отсутствуют
	handlers.RespondJSON(w, http.StatusOK, result.Counts)
}
