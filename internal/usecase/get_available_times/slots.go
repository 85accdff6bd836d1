package get_available_times

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// availableTimes возвращает слоты сетки, не занятые событиями
// Порядок сетки сохраняется. Занятые времена, не являющиеся слотами сетки
// (испорченные данные выше по течению), просто игнорируются
func availableTimes(grid []types.TimeString, events []*domain.Event) []types.TimeString {
	booked := make(map[types.TimeString]struct{}, len(events))
	for _, event := range events {
		booked[event.StartTime] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if _, taken := booked[slot]; !taken {
			available = append(available, slot)
		}
	}

	return available
}
