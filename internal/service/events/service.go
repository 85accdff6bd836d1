package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	eventRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/event"
	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

// Service сервис для работы с событиями календаря
type Service struct {
	eventRepo EventRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(eventRepo EventRepository, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// GetByDate получает все события на указанную дату
// События отсортированы по времени слота по возрастанию
// Пустой результат - валидный ответ, а не ошибка
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.EventListResponse, error) {
	s.logger.Info("GetByDate: fetching events for date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		s.logger.Warn("GetByDate: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	filter := domain.EventsFilter{
		StartDate: ptr.Ptr(date),
		EndDate:   ptr.Ptr(date),
	}

	events, err := s.eventRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: successfully fetched %d events for date=%s", len(events), date.Format(domain.DateFormat))
	return models.FromDomainEventList(events), nil
}

// SummaryByRange возвращает количество событий на каждую дату
// включительного диапазона [startDate, endDate]
// Даты без событий в карте отсутствуют - это контракт, а не упущение:
// фронтенд календаря трактует отсутствующий ключ как 0
func (s *Service) SummaryByRange(ctx context.Context, startDate, endDate time.Time) (*models.SummaryResponse, error) {
	s.logger.Info("SummaryByRange: fetching summary for period=%s to %s",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	if startDate.IsZero() || endDate.IsZero() {
		s.logger.Warn("SummaryByRange: both dates are required")
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if endDate.Before(startDate) {
		s.logger.Warn("SummaryByRange: endDate=%s is before startDate=%s",
			endDate.Format(domain.DateFormat), startDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidDateRange)
	}

	counts, err := s.eventRepo.CountByDateRange(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("SummaryByRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: SummaryByRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SummaryByRange: successfully fetched summary, %d dates with events", len(counts))
	return &models.SummaryResponse{Counts: counts}, nil
}

// Delete удаляет событие по ID
// Удаление безусловное: проверок владельца нет, система без аутентификации
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting event id=%d", id)

	// Сначала убеждаемся, что событие существует
	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Delete: event id=%d not found", id)
			return ErrEventNotFound
		}
		s.logger.Error("Delete: repository error for event id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		// Событие могло быть удалено конкурентно между GetByID и Delete
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Delete: event id=%d not found during deletion", id)
			return ErrEventNotFound
		}
		s.logger.Error("Delete: repository error for event id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted event id=%d", id)
	return nil
}
