package create_event

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// clientName и service намеренно не проверяются: пустые значения допустимы
func validateRequest(req *Request, grid []types.TimeString) error {
	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	// Время обязано быть слотом сетки
	if !domain.ContainsSlot(grid, req.StartTime) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
	}

	return nil
}
