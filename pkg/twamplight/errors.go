package twamplight

import "errors"

var (
	ErrInvalidPacket = errors.New("invalid packet format")
)
