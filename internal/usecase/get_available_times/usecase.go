package get_available_times

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	eventRepo EventRepository
	grid      []types.TimeString
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// Сетка слотов вычисляется один раз: она не зависит от даты
func NewUseCase(
	eventRepo EventRepository,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		grid:      domain.GenerateSlotGrid(schedule),
		logger:    logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем все события на эту дату
	filter := domain.EventsFilter{
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
	}

	events, err := uc.eventRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get events: %v", err)
		return nil, fmt.Errorf("%w: failed to get events: %v", ErrInternal, err)
	}

	// 3. Вычитаем занятые слоты из сетки
	times := availableTimes(uc.grid, events)

	uc.logger.Info("GetAvailableTimes: %d of %d slots available for date=%s",
		len(times), len(uc.grid), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Times: times,
	}, nil
}
