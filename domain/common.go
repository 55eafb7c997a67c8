package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageSuccessPing          = "pong"

	ErrInvalidIndex = errors.New("invalid index")
)
