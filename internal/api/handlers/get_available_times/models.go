package get_available_times

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getAvailableTimes "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_times"
)

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailableTimes.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableTimes.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Ответ - плоский JSON массив строк "HH:MM", как его ждет фронтенд календаря
func FromUseCaseResponse(resp *getAvailableTimes.Response) []string {
	times := make([]string, len(resp.Times))
	for i, t := range resp.Times {
		times[i] = t.String()
	}
	return times
}
