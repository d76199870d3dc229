package service

import (
	"errors"
	"fmt"
)

// Ошибки уровня сервисов. Обработчики сопоставляют их через errors.Is:
// всё, что оборачивает ErrNotFound, превращается в HTTP 404.
var (
	ErrNotFound = errors.New("запись не найдена")

	ErrClientNotFound = fmt.Errorf("клиент: %w", ErrNotFound)
	ErrStaffNotFound  = fmt.Errorf("сотрудник: %w", ErrNotFound)
	ErrAdminNotFound  = fmt.Errorf("администратор: %w", ErrNotFound)
	ErrAppealNotFound = fmt.Errorf("заявка: %w", ErrNotFound)
	ErrStatusNotFound = fmt.Errorf("статус: %w", ErrNotFound)

	// ErrIllegalTransition возвращается только при включённом strict_transitions
	ErrIllegalTransition = errors.New("недопустимый переход статуса заявки")

	ErrLoginTaken       = errors.New("логин уже занят")
	ErrWrongCredentials = errors.New("неверный логин или пароль")
)
