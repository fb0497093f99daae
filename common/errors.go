package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorInvalidShape is returned when an input array has the wrong
	// rank, a ragged axis, or axis lengths that disagree between inputs.
	ErrorInvalidShape = errors.New("invalid shape")
)
