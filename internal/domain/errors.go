package domain

import "errors"

var (
	ErrUnknownMode = errors.New("unknown mode")
)
