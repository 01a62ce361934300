package domain

import "time"

// ReferencePrefix starts every booking reference, followed by six digits.
const ReferencePrefix = "FL"

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is the confirmed result of a wizard session. It only exists once
// payment has gone through, so Reference is always set.
type Booking struct {
	ID            string        `json:"id"`
	Reference     string        `json:"reference"`
	Destination   Destination   `json:"destination"`
	TravelDate    time.Time     `json:"travel_date"`
	Passengers    []string      `json:"passengers"`
	Contact       Contact       `json:"contact"`
	Cost          CostBreakdown `json:"cost"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	ConfirmedAt   time.Time     `json:"confirmed_at"`
}

func (b *Booking) Total() int64 {
	return b.Cost.Total()
}
