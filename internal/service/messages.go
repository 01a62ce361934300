package service

import (
	"errors"
	"fmt"

	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
)

const (
	msgGreeting = "Hello! Welcome to Flight Ticket Booking System."
	msgFarewell = "Thank you for using our system. Have a safe journey!"
)

var rejections = []struct {
	err error
	msg string
}{
	{domain.ErrEmptyInput, "Invalid input! Please enter a value."},
	{domain.ErrUnknownDestination, "Sorry, we do not fly to that destination yet."},
	{domain.ErrInvalidDateFormat, "Invalid date format. Please use DD/MM/YYYY."},
	{domain.ErrPastDate, "The travel date cannot be in the past."},
	{domain.ErrTooFarAhead, fmt.Sprintf("Bookings open only %d days in advance.", domain.MaxAdvanceDays)},
	{domain.ErrNotANumber, "Please enter a whole number."},
	{domain.ErrOutOfRangeCount, fmt.Sprintf("You can book for %d to %d passengers.", domain.MinPassengers, domain.MaxPassengers)},
	{domain.ErrInvalidName, fmt.Sprintf("Name must be at least %d characters long.", domain.MinNameLength)},
	{domain.ErrInvalidEmail, "Please enter a valid email address."},
	{domain.ErrInvalidPhone, "Phone number must be exactly 10 digits."},
	{domain.ErrInvalidPaymentMethod, "Please choose one of the listed payment methods."},
}

func rejectionMessage(err error) string {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.msg
		}
	}
	return "Invalid input! " + err.Error()
}

func abortMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrBookingDeclined):
		return "Booking cancelled. Goodbye!"
	case errors.Is(err, domain.ErrPaymentDeclined):
		return "Payment cancelled. Goodbye!"
	case errors.Is(err, domain.ErrRetryDeclined):
		return "No problem. Booking not completed. Goodbye!"
	default:
		return "Interrupted. Goodbye!"
	}
}
