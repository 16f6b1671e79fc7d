package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrParse           = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrEncode          = errors.New("encoding recipes")
	ErrDecode          = errors.New("decoding recipes")
	ErrSlotUnavailable = errors.New("persisted slot unavailable")
)
