package create_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	createEvent "github.com/m04kA/SMC-CalendarService/internal/usecase/create_event"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format"
	msgInvalidTimeSlot    = "time is not a bookable slot"
	// msgSlotOccupied - контрактная строка, фронтенд сверяет её дословно
	msgSlotOccupied = "Time slot occupied"
)

type Handler struct {
	useCase CreateEventUseCase
	logger  Logger
}

func NewHandler(useCase CreateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /add-event
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /add-event - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /add-event - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createEvent.ErrSlotTaken):
			// Конфликт слота - ожидаемый исход, а не ошибка HTTP уровня:
			// фронтенд различает его по success=false в обычном 200 ответе
			h.logger.Warn("POST /add-event - Slot occupied: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusOK, msgSlotOccupied)

		case errors.Is(err, createEvent.ErrInvalidTimeSlot):
			h.logger.Warn("POST /add-event - Invalid time slot: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createEvent.ErrInvalidInput):
			h.logger.Warn("POST /add-event - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("POST /add-event - Failed to create event: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /add-event - Event created successfully: event_id=%d, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondSuccess(w)
}
