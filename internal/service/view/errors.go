package view

import "errors"

var (
	ErrUnknownView      = errors.New("unknown view")
	ErrNoUser           = errors.New("session has no user")
	ErrInvalidSortOrder = errors.New("invalid sort order")
)
