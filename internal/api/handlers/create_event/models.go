package create_event

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	createEvent "github.com/m04kA/SMC-CalendarService/internal/usecase/create_event"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// CreateEventRequest HTTP request model
type CreateEventRequest struct {
	Date       string `json:"date"`       // "2024-06-10"
	Time       string `json:"time"`       // "09:00"
	ClientName string `json:"clientName"` // пустое значение допустимо
	Service    string `json:"service"`    // пустое значение допустимо
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateEventRequest) ToUseCaseRequest() (*createEvent.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createEvent.Request{
		Date:       date,
		StartTime:  startTime,
		ClientName: r.ClientName,
		Service:    r.Service,
	}, nil
}
