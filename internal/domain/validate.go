package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DateLayout accepts DD/MM/YYYY with or without leading zeros.
	DateLayout     = "2/1/2006"
	MaxAdvanceDays = 365

	MinPassengers = 1
	MaxPassengers = 9

	MinNameLength = 2
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// DateOf drops the time of day, keeping the location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseTravelDate accepts dates in [today, today+MaxAdvanceDays], both ends inclusive.
func ParseTravelDate(input string, now time.Time) (time.Time, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return time.Time{}, ErrEmptyInput
	}

	today := DateOf(now)
	date, err := time.ParseInLocation(DateLayout, in, today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, in)
	}

	if date.Before(today) {
		return time.Time{}, ErrPastDate
	}
	if date.After(today.AddDate(0, 0, MaxAdvanceDays)) {
		return time.Time{}, ErrTooFarAhead
	}

	return date, nil
}

func ParsePassengerCount(input string) (int, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return 0, ErrEmptyInput
	}

	n, err := strconv.Atoi(in)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, in)
	}

	return n, ValidatePassengerCount(n)
}

func ValidatePassengerCount(n int) error {
	if n < MinPassengers || n > MaxPassengers {
		return fmt.Errorf("%w: %d", ErrOutOfRangeCount, n)
	}
	return nil
}

// ParsePassengerName trims and title-cases a display name.
func ParsePassengerName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", ErrEmptyInput
	}
	if utf8.RuneCountInString(name) < MinNameLength {
		return "", fmt.Errorf("%w: must be at least %d characters", ErrInvalidName, MinNameLength)
	}

	return cases.Title(language.Und).String(name), nil
}

func ParseEmail(input string) (string, error) {
	email := strings.TrimSpace(input)
	if email == "" {
		return "", ErrEmptyInput
	}
	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return email, nil
}

func ParsePhone(input string) (string, error) {
	phone := strings.TrimSpace(input)
	if phone == "" {
		return "", ErrEmptyInput
	}
	if !phonePattern.MatchString(phone) {
		return "", ErrInvalidPhone
	}
	return phone, nil
}

// IsYes is the only answer that passes a gate.
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}
