package utils

import "errors"

var (
	ErrorRecordNotFound    = errors.New("record not found")
	ErrorInvalidTransition = errors.New("invalid status transition")
)
