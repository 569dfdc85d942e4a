package domain

import "errors"

// Request-level failures raised by the dispatcher and handlers.
var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrForbidden              = errors.New("access forbidden")
	ErrNotAcceptable          = errors.New("not acceptable")
	ErrUnsupportedContentType = errors.New("invalid content-type, expected application/json")
	ErrInvalidPayload         = errors.New("invalid payload")
)
