package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Event represents a booked time slot in the calendar
type Event struct {
	ID         int64
	Date       time.Time // календарная дата без времени
	StartTime  types.TimeString
	ClientName string
	Service    string
	CreatedAt  time.Time
}

// EventsFilter фильтр для выборки событий
// Для выборки на конкретную дату StartDate и EndDate указывают на одну дату
type EventsFilter struct {
	StartDate *time.Time        // Начало периода (включительно)
	EndDate   *time.Time        // Конец периода (включительно)
	StartTime *types.TimeString // Конкретный слот (опционально)
}

// IsSingleDate возвращает true, если фильтр ограничен одной датой
func (f *EventsFilter) IsSingleDate() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate)
}
