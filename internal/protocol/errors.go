package protocol

import "errors"

var (
	ErrShortFrame   = errors.New("protocol: short frame")
	ErrUnknownType  = errors.New("protocol: unknown message type")
	ErrUnknownItem  = errors.New("protocol: unknown item")
	ErrBadBool      = errors.New("protocol: boolean field is neither 0 nor 1")
	ErrQueueClosed  = errors.New("protocol: queue closed")
	ErrUnknownValue = errors.New("protocol: cannot encode message")
	ErrBadDirection = errors.New("protocol: unknown direction")
)
