package dispatcher

import "errors"

var (
	ErrValidation     = errors.New("validation failed")
	ErrDispatchFailed = errors.New("dispatch failed")
)

// ValidationError ошибка входных данных, найденная до обращения к бэкенду.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
