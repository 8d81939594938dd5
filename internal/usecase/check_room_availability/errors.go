package check_room_availability

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("check_room_availability: room not found")

	// ErrInvalidInterval возвращается при некорректном временном окне
	ErrInvalidInterval = errors.New("check_room_availability: invalid time interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_room_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_room_availability: internal error")
)
