package apperrors

import "errors"

// Ошибки уровня сервисов. Хендлеры сопоставляют их с HTTP статусами
// через errors.Is, сервисы оборачивают через fmt.Errorf с %w.
var (
	ErrUnauthorized = errors.New("требуется аутентификация")
	ErrForbidden    = errors.New("доступ запрещен")
	ErrNotFound     = errors.New("не найдено")
	ErrValidation   = errors.New("неверные данные")
	ErrInvalidPage  = errors.New("страница вне диапазона")
)
