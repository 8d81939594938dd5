package suggest_rooms

import "errors"

var (
	// ErrInvalidInterval возвращается при некорректном временном окне
	ErrInvalidInterval = errors.New("suggest_rooms: invalid time interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("suggest_rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("suggest_rooms: internal error")
)
