package create_event

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	eventRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/event"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
	getAvailableTimes "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_times"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// memoryEventRepo хранилище в памяти: созданные события видны последующим
// чтениям, что позволяет проверять цепочки операций целиком
type memoryEventRepo struct {
	nextID int64
	events []*domain.Event
}

func (m *memoryEventRepo) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	// Аналог уникального индекса (event_date, start_time)
	for _, existing := range m.events {
		if existing.Date.Equal(event.Date) && existing.StartTime == event.StartTime {
			return nil, eventRepo.ErrSlotTaken
		}
	}

	m.nextID++
	created := *event
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	m.events = append(m.events, &created)
	return &created, nil
}

func (m *memoryEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	for _, event := range m.events {
		if event.ID == id {
			return event, nil
		}
	}
	return nil, eventRepo.ErrEventNotFound
}

func (m *memoryEventRepo) GetWithFilter(_ context.Context, filter domain.EventsFilter) ([]*domain.Event, error) {
	result := make([]*domain.Event, 0)
	for _, event := range m.events {
		if filter.StartDate != nil && event.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && event.Date.After(*filter.EndDate) {
			continue
		}
		if filter.StartTime != nil && event.StartTime != *filter.StartTime {
			continue
		}
		result = append(result, event)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})
	return result, nil
}

func (m *memoryEventRepo) CountByDateRange(_ context.Context, startDate, endDate time.Time) (map[string]int, error) {
	counts := make(map[string]int)
	for _, event := range m.events {
		if event.Date.Before(startDate) || event.Date.After(endDate) {
			continue
		}
		counts[event.Date.Format(domain.DateFormat)]++
	}
	return counts, nil
}

func (m *memoryEventRepo) Delete(_ context.Context, id int64) error {
	for i, event := range m.events {
		if event.ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return eventRepo.ErrEventNotFound
}

// TestBookingFlow проверяет сквозной сценарий дня через общее хранилище:
// пустой день, создание, доступность, конфликт и удаление
func TestBookingFlow(t *testing.T) {
	store := &memoryEventRepo{}
	schedule := domain.DefaultSchedule()

	createUC := NewUseCase(store, &fakeTxManager{}, schedule, nopLogger{})
	availableUC := getAvailableTimes.NewUseCase(store, schedule, nopLogger{})
	svc := events.NewService(store, nopLogger{})

	ctx := context.Background()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	// Пустой день: свободна вся сетка из 19 слотов
	available, err := availableUC.Execute(ctx, &getAvailableTimes.Request{Date: date})
	require.NoError(t, err)
	require.Len(t, available.Times, 19)

	// Создаем событие на 09:00
	created, err := createUC.Execute(ctx, &Request{
		Date:       date,
		StartTime:  "09:00",
		ClientName: "Anna",
		Service:    "Haircut",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	// Список дня содержит новое событие ровно один раз
	list, err := svc.GetByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, list.Events, 1)
	assert.Equal(t, created.ID, list.Events[0].ID)
	assert.Equal(t, types.TimeString("09:00"), list.Events[0].StartTime)

	// Свободных слотов стало 18, и 09:00 среди них нет
	available, err = availableUC.Execute(ctx, &getAvailableTimes.Request{Date: date})
	require.NoError(t, err)
	assert.Len(t, available.Times, 18)
	assert.NotContains(t, available.Times, types.TimeString("09:00"))

	// Повторное создание на тот же слот конфликтует, хранилище не меняется
	_, err = createUC.Execute(ctx, &Request{Date: date, StartTime: "09:00"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	list, err = svc.GetByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, list.Events, 1)

	// Соседний слот остается доступным
	_, err = createUC.Execute(ctx, &Request{Date: date, StartTime: "09:30"})
	require.NoError(t, err)

	// Удаление освобождает слот
	require.NoError(t, svc.Delete(ctx, created.ID))

	available, err = availableUC.Execute(ctx, &getAvailableTimes.Request{Date: date})
	require.NoError(t, err)
	assert.Contains(t, available.Times, types.TimeString("09:00"))
	assert.NotContains(t, available.Times, types.TimeString("09:30"))
}

// TestBookingFlow_Summary проверяет подсчет по датам через общее хранилище
func TestBookingFlow_Summary(t *testing.T) {
	store := &memoryEventRepo{}
	schedule := domain.DefaultSchedule()

	createUC := NewUseCase(store, &fakeTxManager{}, schedule, nopLogger{})
	svc := events.NewService(store, nopLogger{})

	ctx := context.Background()
	day1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	for _, booking := range []struct {
		date time.Time
		slot types.TimeString
	}{
		{day1, "09:00"},
		{day1, "10:00"},
		{day3, "14:30"},
	} {
		_, err := createUC.Execute(ctx, &Request{Date: booking.date, StartTime: booking.slot})
		require.NoError(t, err)
	}

	summary, err := svc.SummaryByRange(ctx, day1, day3)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"2024-06-01": 2,
		"2024-06-03": 1,
	}, summary.Counts)
}
