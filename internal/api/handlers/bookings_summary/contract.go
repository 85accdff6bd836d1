package bookings_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

type EventsService interface {
	SummaryByRange(ctx context.Context, startDate, endDate time.Time) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
