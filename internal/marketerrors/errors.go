package marketerrors

import "errors"

// Repository-level errors
var (
	ErrPropertyNotFound = errors.New("property not found")
)

// business logic errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrBidNotAccepted  = errors.New("bid not accepted")
)
