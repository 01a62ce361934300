package domain

import "errors"

var (
	ErrEmptyInput           = errors.New("input is empty")
	ErrUnknownDestination   = errors.New("unknown destination")
	ErrInvalidDateFormat    = errors.New("invalid date format")
	ErrPastDate             = errors.New("travel date is in the past")
	ErrTooFarAhead          = errors.New("travel date is too far ahead")
	ErrNotANumber           = errors.New("not a number")
	ErrOutOfRangeCount      = errors.New("passenger count out of range")
	ErrInvalidName          = errors.New("invalid passenger name")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Aborts end the wizard early. They are outcomes, not failures.
var (
	ErrRetryDeclined   = errors.New("retry declined")
	ErrBookingDeclined = errors.New("booking cancelled")
	ErrPaymentDeclined = errors.New("payment cancelled")
	ErrInterrupted     = errors.New("interrupted")
)

var (
	ErrInvalidTransition    = errors.New("invalid state transition")
	ErrCatalogEmpty         = errors.New("destination catalog is empty")
	ErrDuplicateDestination = errors.New("duplicate destination")
)

var (
	ErrValidation = errors.New("validation error")
)

// IsAbort reports whether err ends the wizard by user choice or interrupt.
func IsAbort(err error) bool {
	return errors.Is(err, ErrRetryDeclined) ||
		errors.Is(err, ErrBookingDeclined) ||
		errors.Is(err, ErrPaymentDeclined) ||
		errors.Is(err, ErrInterrupted)
}
