package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolved оба адреса операции не ответили успешно.
	ErrUnresolved = errors.New("endpoint unresolved")

	ErrUnexpectedPayload = errors.New("unexpected payload")
)

// StatusError ответ с кодом вне диапазона 2xx.
type StatusError struct {
	Target     string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Target, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Target, e.StatusCode, e.Body)
}

// Failure возвращается, когда не ответил ни основной, ни запасной адрес.
// Сопоставляется с ErrUnresolved и с обеими причинами через errors.Is / errors.As.
type Failure struct {
	Operation string
	Primary   error
	Secondary error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v: primary: %v; secondary: %v", f.Operation, ErrUnresolved, f.Primary, f.Secondary)
}

func (f *Failure) Unwrap() []error {
	return []error{ErrUnresolved, f.Primary, f.Secondary}
}
