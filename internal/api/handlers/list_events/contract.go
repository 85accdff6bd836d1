package list_events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

type EventService interface {
	GetByDate(ctx context.Context, date time.Time) (*models.EventListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
