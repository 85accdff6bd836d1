package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// EventResponse событие календаря
type EventResponse struct {
	ID         int64
	Date       time.Time
	StartTime  types.TimeString
	ClientName string
	Service    string
	CreatedAt  time.Time
}

// EventListResponse список событий
type EventListResponse struct {
	Events []EventResponse
}

// SummaryResponse количество событий по датам (YYYY-MM-DD -> count)
// Даты без событий в карте отсутствуют
type SummaryResponse struct {
	Counts map[string]int
}

// FromDomainEvent конвертирует domain.Event в EventResponse
func FromDomainEvent(event *domain.Event) *EventResponse {
	return &EventResponse{
		ID:         event.ID,
		Date:       event.Date,
		StartTime:  event.StartTime,
		ClientName: event.ClientName,
		Service:    event.Service,
		CreatedAt:  event.CreatedAt,
	}
}

// FromDomainEventList конвертирует список domain.Event в EventListResponse
func FromDomainEventList(events []*domain.Event) *EventListResponse {
	result := make([]EventResponse, len(events))
	for i, event := range events {
		result[i] = *FromDomainEvent(event)
	}
	return &EventListResponse{Events: result}
}
