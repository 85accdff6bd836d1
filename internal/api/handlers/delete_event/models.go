package delete_event

// DeleteEventRequest HTTP request model
// Идентификатор передается в теле запроса, а не в пути - контракт фронтенда календаря
type DeleteEventRequest struct {
	EventID int64 `json:"eventId"`
}
