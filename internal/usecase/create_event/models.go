package create_event

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модель запроса на создание события
type Request struct {
	Date       time.Time        // Дата события (без времени)
	StartTime  types.TimeString // Слот сетки (например, "09:00")
	ClientName string           // Имя клиента (пустое значение допустимо)
	Service    string           // Название услуги (пустое значение допустимо)
}

// Response модель ответа с созданным событием
type Response struct {
	ID         int64            // ID созданного события
	Date       time.Time        // Дата события
	StartTime  types.TimeString // Слот сетки
	ClientName string           // Имя клиента
	Service    string           // Название услуги
	CreatedAt  time.Time        // Время создания (проставляется БД)
}
