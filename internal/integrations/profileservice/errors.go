package profileservice

import "errors"

var (
	// ErrChefNotFound возвращается, когда шеф не найден в ProfileService
	ErrChefNotFound = errors.New("chef not found")

	// ErrMenuNotFound возвращается, когда меню не найдено в ProfileService
	ErrMenuNotFound = errors.New("menu not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")
)
