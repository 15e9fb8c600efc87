package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrNotAReport        = errors.New("text is not a session report")
	ErrNegativeKillCount = errors.New("negative kill count")
)
