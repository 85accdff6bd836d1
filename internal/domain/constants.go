package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default schedule values
// Слоты каждые 30 минут с 08:00; последний укороченный слот в 17:00
// позволяет запись ровно в момент закрытия
const (
	DefaultOpenTime            = "08:00"
	DefaultCloseTime           = "17:00"
	DefaultSlotDurationMinutes = 30
	DefaultIncludeClosingSlot  = true
)
