package create_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	eventRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/event"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// UseCase use case для создания события с проверкой конфликта слота
type UseCase struct {
	eventRepo EventRepository
	txManager TransactionManager
	grid      []types.TimeString
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// Сетка слотов вычисляется один раз: она не зависит от даты
func NewUseCase(
	eventRepo EventRepository,
	txManager TransactionManager,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		txManager: txManager,
		grid:      domain.GenerateSlotGrid(schedule),
		logger:    logger,
	}
}

// Execute выполняет use case создания события
//
// Проверка занятости слота и вставка выполняются в одной SERIALIZABLE
// транзакции с блокировкой событий дня (FOR UPDATE), поэтому два
// одновременных запроса на один слот не могут оба пройти проверку.
// Вторым рубежом служит уникальный индекс (event_date, start_time):
// репозиторий превращает его нарушение в тот же ErrSlotTaken.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateEvent: date=%s, time=%s, client=%q, service=%q",
		req.Date.Format(domain.DateFormat), req.StartTime, req.ClientName, req.Service)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.grid); err != nil {
		uc.logger.Warn("CreateEvent: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Event

	// 2. Проверяем занятость слота и создаем событие в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Ищем событие на этот слот с блокировкой
		filter := domain.EventsFilter{
			StartDate: ptr.Ptr(req.Date),
			EndDate:   ptr.Ptr(req.Date),
			StartTime: ptr.Ptr(req.StartTime),
		}

		existing, err := uc.eventRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateEvent: failed to check slot: %v", err)
			// Оборачиваем через %w: serialization failure внутри транзакции
			// должен остаться видимым для retry-логики transaction manager'а
			return fmt.Errorf("%w: failed to check slot: %w", ErrInternal, err)
		}

		if len(existing) > 0 {
			uc.logger.Warn("CreateEvent: slot %s %s already taken by event id=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, existing[0].ID)
			return ErrSlotTaken
		}

		// 2.2. Создаем событие
		event := &domain.Event{
			Date:       req.Date,
			StartTime:  req.StartTime,
			ClientName: req.ClientName,
			Service:    req.Service,
		}

		created, err := uc.eventRepo.Create(txCtx, event)
		if err != nil {
			// Уникальный индекс поймал гонку, которую не увидела проверка выше
			if errors.Is(err, eventRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateEvent: slot %s %s taken concurrently",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateEvent: failed to create event: %v", err)
			return fmt.Errorf("%w: failed to create event: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateEvent: successfully created event id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		Date:       result.Date,
		StartTime:  result.StartTime,
		ClientName: result.ClientName,
		Service:    result.Service,
		CreatedAt:  result.CreatedAt,
	}, nil
}
