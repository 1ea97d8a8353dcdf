package services

import (
	"errors"
	"fmt"
)

// Generic messages returned when a workflow fails for any reason other than a
// business rule violation. The underlying cause is logged, never surfaced.
var (
	ErrCreateProduct = errors.New("Network Interval Error")
	ErrSearchProduct = errors.New("Internal server error")
)

// BusinessError is a rule violation that must reach the caller verbatim with
// client-error semantics (language missing from the directory, etc.).
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func NewBusinessError(format string, args ...interface{}) *BusinessError {
	return &BusinessError{Message: fmt.Sprintf(format, args...)}
}

// IsBusinessError reports whether err (or anything it wraps) is a BusinessError.
func IsBusinessError(err error) bool {
	var bizErr *BusinessError
	return errors.As(err, &bizErr)
}
