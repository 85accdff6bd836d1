package get_available_times

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

func TestAvailableTimes_EmptyDay(t *testing.T) {
	grid := domain.GenerateSlotGrid(domain.DefaultSchedule())

	times := availableTimes(grid, nil)

	// Пустой день возвращает всю сетку целиком
	assert.Equal(t, grid, times)
}

func TestAvailableTimes_BookedSlotsExcluded(t *testing.T) {
	grid := domain.GenerateSlotGrid(domain.DefaultSchedule())
	events := []*domain.Event{
		{ID: 1, StartTime: "09:00"},
		{ID: 2, StartTime: "14:30"},
	}

	times := availableTimes(grid, events)

	assert.Len(t, times, len(grid)-2)
	assert.NotContains(t, times, types.TimeString("09:00"))
	assert.NotContains(t, times, types.TimeString("14:30"))

	// Порядок сетки сохраняется
	for i := 1; i < len(times); i++ {
		assert.True(t, times[i-1].IsBefore(times[i]))
	}
}

func TestAvailableTimes_FullyBookedDay(t *testing.T) {
	grid := domain.GenerateSlotGrid(domain.DefaultSchedule())

	events := make([]*domain.Event, len(grid))
	for i, slot := range grid {
		events[i] = &domain.Event{ID: int64(i + 1), StartTime: slot}
	}

	times := availableTimes(grid, events)

	assert.Empty(t, times)
}

func TestAvailableTimes_UnknownBookedTimeIgnored(t *testing.T) {
	grid := domain.GenerateSlotGrid(domain.DefaultSchedule())
	events := []*domain.Event{
		{ID: 1, StartTime: "09:15"}, // не слот сетки
	}

	times := availableTimes(grid, events)

	// Время вне сетки не влияет на доступность слотов
	assert.Equal(t, grid, times)
}
