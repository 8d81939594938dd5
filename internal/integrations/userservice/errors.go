package userservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("userservice: user not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("userservice: invalid response")

	// ErrServiceDegraded возвращается при недоступности UserService,
	// когда вызывающая сторона может продолжить без данных пользователя
	ErrServiceDegraded = errors.New("userservice: service degraded")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice: internal error")
)
