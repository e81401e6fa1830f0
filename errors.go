package flows

import (
	"errors"
	"fmt"

	flowerrors "github.com/elastiflow/flows/errors"
)

// ErrorCode represents a generic flow ErrorCode
type ErrorCode int

const (
	RUN ErrorCode = iota
	MAP
	FILTER
	FLAT_MAP
	TAP
	FOLD
)

// String converts ErrorCode enum into a string value
func (c ErrorCode) String() string {
	return [...]string{
		"RUN",
		"MAP",
		"FILTER",
		"FLAT_MAP",
		"TAP",
		"FOLD",
	}[c]
}

// Message converts ErrorCode enum into a human-readable message
func (c ErrorCode) Message(msg string, segment string) string {
	return fmt.Sprintf(
		"flow %s error (code: %d segment: %s, message: %s)", c.String(), c, segment, msg,
	)
}

// Error defines a custom error type
type Error struct {
	Code    ErrorCode
	Segment string
	Message string
	cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Stage implements the flows/errors.Error interface
func (e *Error) Stage() string {
	return e.Segment
}

// Unwrap exposes the user callback's error to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.cause
}

var _ flowerrors.Error = (*Error)(nil)

func newError(code ErrorCode, segment string, err error) error {
	return &Error{
		Code:    code,
		Segment: segment,
		Message: code.Message(err.Error(), segment),
		cause:   err,
	}
}

func newRunError(segment string, err error) error {
	return newError(RUN, segment, err)
}

func newMapError(segment string, err error) error {
	return newError(MAP, segment, err)
}

func newFilterError(segment string, err error) error {
	return newError(FILTER, segment, err)
}

func newFlatMapError(segment string, err error) error {
	return newError(FLAT_MAP, segment, err)
}

func newTapError(segment string, err error) error {
	return newError(TAP, segment, err)
}

func newFoldError(segment string, err error) error {
	return newError(FOLD, segment, err)
}

func isError(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsRunError checks if the given error is a RUN error.
// It returns true if the error is a RUN error, otherwise false.
func IsRunError(err error) bool {
	return isError(err, RUN)
}

// IsMapError checks if the given error is a MAP error.
// It returns true if the error is a MAP error, otherwise false.
func IsMapError(err error) bool {
	return isError(err, MAP)
}

// IsFilterError checks if the given error is a FILTER error.
// It returns true if the error is a FILTER error, otherwise false.
func IsFilterError(err error) bool {
	return isError(err, FILTER)
}

// IsFlatMapError checks if the given error is a FLAT_MAP error.
// It returns true if the error is a FLAT_MAP error, otherwise false.
func IsFlatMapError(err error) bool {
	return isError(err, FLAT_MAP)
}

// IsTapError checks if the given error is a TAP error.
// It returns true if the error is a TAP error, otherwise false.
func IsTapError(err error) bool {
	return isError(err, TAP)
}

func IsFoldError(err error) bool {
	return isError(err, FOLD)
}
