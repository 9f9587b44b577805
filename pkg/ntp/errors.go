package ntp

import "errors"

var (
	ErrInvalidLength   = errors.New("invalid timestamp length")
	ErrInvalidEncoding = errors.New("invalid timestamp encoding")
)
