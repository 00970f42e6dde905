// Package errs holds the sentinel errors shared by both commands and the
// classification used for logging and exit codes.
package errs

import (
	"errors"
)

// Class groups failures by how they surface to the operator.
type Class int

const (
	ClassUnknown Class = iota
	ClassMissingInput
	ClassMalformed
	ClassInvalidConfig
	ClassIO
)

func (c Class) String() string {
	switch c {
	case ClassMissingInput:
		return "missing-input"
	case ClassMalformed:
		return "malformed"
	case ClassInvalidConfig:
		return "invalid-config"
	case ClassIO:
		return "io"
	default:
		return "unknown"
	}
}

var (
	ErrInputNotFound = errors.New("file not found")
	ErrParsingFailed = errors.New("parsing failed")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrWriteFailed   = errors.New("write failed")
)

// Classify maps err onto a Class by its wrapped sentinel.
func Classify(err error) Class {
	switch {
	case err == nil:
		return ClassUnknown
	case errors.Is(err, ErrInputNotFound):
		return ClassMissingInput
	case errors.Is(err, ErrParsingFailed):
		return ClassMalformed
	case errors.Is(err, ErrInvalidConfig):
		return ClassInvalidConfig
	case errors.Is(err, ErrWriteFailed):
		return ClassIO
	default:
		return ClassUnknown
	}
}

// ExitCode is 0 for a nil error and 1 for every failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
