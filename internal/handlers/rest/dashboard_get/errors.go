package dashboard_get

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid status filter")
	ErrInvalidLimit  = errors.New("invalid notifications_limit")
)
