// Package apperrors содержит общую таксономию ошибок сервиса.
// Слои repository/service оборачивают их через %w, хендлеры
// разбирают через errors.Is и выбирают HTTP-статус.
package apperrors

import "errors"

var (
	ErrAlreadyExists      = errors.New("уже существует")
	ErrNotFound           = errors.New("не найден")
	ErrInvalidCredentials = errors.New("неверный пароль")
	ErrUnauthenticated    = errors.New("требуется аутентификация")
	ErrForbidden          = errors.New("доступ запрещен")

	// Ошибки токенов различаются на пути refresh
	ErrMissingToken = errors.New("токен отсутствует")
	ErrInvalidToken = errors.New("недействительный токен")
	ErrTokenExpired = errors.New("токен истек")
)
