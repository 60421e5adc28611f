package service

import "fmt"

// ErrorKind — класс ошибки сервиса. Хендлеры маппят Kind в HTTP-статус
// по фиксированной таблице, не заглядывая в текст.
type ErrorKind int

const (
	KindValidation ErrorKind = iota // некорректный или отсутствующий вход
	KindConflict                    // нарушение уникальности
	KindAuth                        // неверные учётные данные
	KindNotFound                    // запись не найдена
	KindInternal                    // неожиданный сбой хранилища/рантайма
)

// Error — типизированная ошибка сервисного слоя. Message безопасен для
// клиента; Err хранит исходную причину и попадает только в логи.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation — ошибка входных данных, до обращения к хранилищу.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflict — нарушение уникальности (например, занятый email).
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Auth — неверные учётные данные. Текст одинаков для «нет такого email»
// и «неверный пароль», чтобы не допускать перебор аккаунтов.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// NotFound — запрошенной записи не существует.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal — неожиданный сбой; причина сохраняется для логов.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}
