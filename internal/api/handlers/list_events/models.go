package list_events

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

// EventResponse HTTP модель события
type EventResponse struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	ClientName string `json:"clientName"`
	Service    string `json:"service"`
	CreatedAt  string `json:"createdAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
// Всегда возвращает слайс (не nil), чтобы пустой день сериализовался как []
func FromServiceResponse(resp *models.EventListResponse) []EventResponse {
	result := make([]EventResponse, len(resp.Events))
	for i, event := range resp.Events {
		result[i] = EventResponse{
			ID:         event.ID,
			Date:       event.Date.Format(domain.DateFormat),
			Time:       event.StartTime.String(),
			ClientName: event.ClientName,
			Service:    event.Service,
			CreatedAt:  event.CreatedAt.Format(time.RFC3339),
		}
	}
	return result
}
