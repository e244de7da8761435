package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrModelUnavailable marks network/service/timeout failures of the
	// completion endpoint. Terminal for the request, never retried here.
	ErrModelUnavailable = errors.New("model unavailable")
)

// InvalidModelOutputError is returned when the completion text cannot be
// decoded into a StructuredIntent. It carries the raw text so operators can
// inspect prompt or model drift; nothing downstream of the parser runs.
type InvalidModelOutputError struct {
	Raw string
	Err error
}

func (e *InvalidModelOutputError) Error() string {
	return fmt.Sprintf("invalid model output: %v", e.Err)
}

func (e *InvalidModelOutputError) Unwrap() error {
	return e.Err
}
