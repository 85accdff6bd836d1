package create_event

import "errors"

var (
	// ErrSlotTaken возвращается, когда слот (date, time) уже занят
	ErrSlotTaken = errors.New("create_event: time slot occupied")

	// ErrInvalidTimeSlot возвращается, когда время не является слотом сетки
	ErrInvalidTimeSlot = errors.New("create_event: time is not a valid slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_event: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_event: internal error")
)
