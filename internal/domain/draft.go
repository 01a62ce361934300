package domain

import (
	"fmt"
	"slices"
	"time"
)

// Draft accumulates a booking stage by stage. Each setter only works while
// the draft sits in the matching state, which keeps the fields in order.
type Draft struct {
	state State

	Destination    Destination
	TravelDate     time.Time
	PassengerCount int
	Passengers     []string
	Contact        Contact
	Cost           CostBreakdown
	PaymentMethod  PaymentMethod
}

func NewDraft() *Draft {
	return &Draft{state: StateStart}
}

func (d *Draft) State() State {
	return d.state
}

func (d *Draft) Advance(to State) error {
	if !d.state.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.state, to)
	}
	d.state = to
	return nil
}

func (d *Draft) require(s State) error {
	if d.state != s {
		return fmt.Errorf("%w: expected %s, draft is in %s", ErrInvalidTransition, s, d.state)
	}
	return nil
}

func (d *Draft) SetDestination(dest Destination) error {
	if err := d.require(StateDestination); err != nil {
		return err
	}
	d.Destination = dest
	return nil
}

func (d *Draft) SetTravelDate(date time.Time) error {
	if err := d.require(StateDate); err != nil {
		return err
	}
	d.TravelDate = date
	return nil
}

func (d *Draft) SetPassengerCount(n int) error {
	if err := d.require(StatePassengerCount); err != nil {
		return err
	}
	if err := ValidatePassengerCount(n); err != nil {
		return err
	}
	d.PassengerCount = n
	d.Passengers = make([]string, 0, n)
	return nil
}

func (d *Draft) AddPassenger(name string) error {
	if err := d.require(StatePassengerNames); err != nil {
		return err
	}
	if len(d.Passengers) >= d.PassengerCount {
		return fmt.Errorf("%w: all %d passengers already named", ErrValidation, d.PassengerCount)
	}
	d.Passengers = append(d.Passengers, name)
	return nil
}

func (d *Draft) SetContact(c Contact) error {
	if err := d.require(StateContact); err != nil {
		return err
	}
	d.Contact = c
	return nil
}

// Price fills in the cost breakdown for the chosen destination and head count.
func (d *Draft) Price(policy FarePolicy) (CostBreakdown, error) {
	if err := d.require(StateSummary); err != nil {
		return CostBreakdown{}, err
	}
	if len(d.Passengers) != d.PassengerCount {
		return CostBreakdown{}, fmt.Errorf("%w: %d of %d passengers named", ErrValidation, len(d.Passengers), d.PassengerCount)
	}
	d.Cost = policy.Quote(d.Destination.BaseFare, d.PassengerCount)
	return d.Cost, nil
}

func (d *Draft) SetPaymentMethod(m PaymentMethod) error {
	if err := d.require(StatePaymentMethod); err != nil {
		return err
	}
	d.PaymentMethod = m
	return nil
}

// Complete turns a paid draft into a confirmed booking.
func (d *Draft) Complete(id, reference string, at time.Time) (*Booking, error) {
	if err := d.require(StatePaid); err != nil {
		return nil, err
	}
	if d.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", ErrValidation)
	}
	if reference == "" {
		return nil, fmt.Errorf("%w: booking reference is required", ErrValidation)
	}

	return &Booking{
		ID:            id,
		Reference:     reference,
		Destination:   d.Destination,
		TravelDate:    d.TravelDate,
		Passengers:    slices.Clone(d.Passengers),
		Contact:       d.Contact,
		Cost:          d.Cost,
		PaymentMethod: d.PaymentMethod,
		ConfirmedAt:   at,
	}, nil
}
