package views

import "errors"

var (
	ErrClosed  = errors.New("view manager closed")
	ErrNoUser  = errors.New("session has no user")
	ErrUnknown = errors.New("view is not active")
)
