package domain

import "github.com/m04kA/SMC-CalendarService/pkg/types"

// Schedule describes the shape of a business day
// Сетка слотов одинакова для всех дат
type Schedule struct {
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	IncludeClosingSlot  bool
}

// DefaultSchedule returns the standard business day schedule
func DefaultSchedule() Schedule {
	return Schedule{
		OpenTime:            types.TimeString(DefaultOpenTime),
		CloseTime:           types.TimeString(DefaultCloseTime),
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		IncludeClosingSlot:  DefaultIncludeClosingSlot,
	}
}

// GenerateSlotGrid генерирует упорядоченную сетку слотов рабочего дня
// Обычные слоты идут от открытия с шагом SlotDurationMinutes, пока конец
// слота помещается до закрытия; затем, если включен IncludeClosingSlot,
// добавляется слот ровно в момент закрытия (укороченный последний слот)
func GenerateSlotGrid(s Schedule) []types.TimeString {
	grid := make([]types.TimeString, 0, 24)

	current := s.OpenTime
	for current.IsBefore(s.CloseTime) {
		slotEnd, err := current.AddMinutes(s.SlotDurationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(s.CloseTime) {
			break
		}

		grid = append(grid, current)
		current = slotEnd
	}

	if s.IncludeClosingSlot {
		grid = append(grid, s.CloseTime)
	}

	return grid
}

// ContainsSlot проверяет, что время является слотом сетки
func ContainsSlot(grid []types.TimeString, t types.TimeString) bool {
	for _, slot := range grid {
		if slot == t {
			return true
		}
	}
	return false
}
