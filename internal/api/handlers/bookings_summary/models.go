package bookings_summary

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ParseDateRange парсит startDate и endDate из query параметров
func ParseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return startDate, endDate, nil
}
