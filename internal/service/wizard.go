package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/clock"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Wizard walks one traveller through the booking conversation.
type Wizard struct {
	fares     *FareService
	clock     clock.Clock
	refs      *ReferenceGenerator
	presenter ports.Presenter
	logger    logger.Logger
}

func NewWizard(
	fares *FareService,
	clk clock.Clock,
	random ports.RandomSource,
	presenter ports.Presenter,
	logger logger.Logger,
) *Wizard {
	return &Wizard{
		fares:     fares,
		clock:     clk,
		refs:      NewReferenceGenerator(random),
		presenter: presenter,
		logger:    logger,
	}
}

// Outcome describes how a session ended. Booking is set only when State is done.
type Outcome struct {
	Booking  *domain.Booking
	State    domain.State
	Rejected int
}

type session struct {
	ctx      context.Context
	io       ports.Prompter
	draft    *domain.Draft
	booking  *domain.Booking
	rejected int
	logger   logger.Logger
}

func (s *session) read(prompt string) (string, error) {
	answer, err := s.io.Ask(s.ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInterrupted, err)
	}
	return answer, nil
}

func (s *session) reject(err error) {
	s.rejected++
	s.io.Say(rejectionMessage(err))
	s.logger.Debug("input rejected",
		logger.String("stage", string(s.draft.State())),
		logger.Int("rejected", s.rejected),
	)
}

type stage struct {
	state domain.State
	run   func(*session) error
}

func (w *Wizard) stages() []stage {
	return []stage{
		{domain.StateDestination, w.destinationStage},
		{domain.StateDate, w.dateStage},
		{domain.StatePassengerCount, w.passengerCountStage},
		{domain.StatePassengerNames, w.passengerNamesStage},
		{domain.StateContact, w.contactStage},
		{domain.StateSummary, w.summaryStage},
		{domain.StateConfirm, w.confirmStage},
		{domain.StatePaymentConfirm, w.paymentGateStage},
		{domain.StatePaymentMethod, w.paymentMethodStage},
		{domain.StatePaid, w.payStage},
	}
}

// Run executes every stage in order. It returns a nil error only when the
// booking is confirmed; aborts come back wrapped around the domain abort errors.
func (w *Wizard) Run(ctx context.Context, io ports.Prompter) (Outcome, error) {
	s := &session{
		ctx:    ctx,
		io:     io,
		draft:  domain.NewDraft(),
		logger: w.logger,
	}

	io.Say(msgGreeting)

	for _, st := range w.stages() {
		if err := s.draft.Advance(st.state); err != nil {
			return w.outcome(s), err
		}
		w.logger.Debug("stage started", logger.String("stage", string(st.state)))

		if err := st.run(s); err != nil {
			return w.abort(s, err)
		}
	}

	if err := s.draft.Advance(domain.StateDone); err != nil {
		return w.outcome(s), err
	}
	io.Say(msgFarewell)

	w.logger.Info("booking confirmed",
		logger.String("booking_id", s.booking.ID),
		logger.String("reference", s.booking.Reference),
		logger.String("destination", s.booking.Destination.AirportCode),
		logger.Int("passengers", len(s.booking.Passengers)),
		logger.Int64("total", s.booking.Total()),
	)

	return w.outcome(s), nil
}

func (w *Wizard) outcome(s *session) Outcome {
	out := Outcome{State: s.draft.State(), Rejected: s.rejected}
	if out.State == domain.StateDone {
		out.Booking = s.booking
	}
	return out
}

func (w *Wizard) abort(s *session, err error) (Outcome, error) {
	at := s.draft.State()
	if !domain.IsAbort(err) {
		return w.outcome(s), fmt.Errorf("%s: %w", at, err)
	}

	final := domain.StateAborted
	if errors.Is(err, domain.ErrInterrupted) {
		final = domain.StateInterrupted
	}
	if advErr := s.draft.Advance(final); advErr != nil {
		return w.outcome(s), fmt.Errorf("%s: %w", at, errors.Join(err, advErr))
	}

	s.io.Say(abortMessage(err))
	w.logger.Info("booking aborted",
		logger.String("stage", string(at)),
		logger.String("reason", err.Error()),
		logger.Int("rejected", s.rejected),
	)

	return w.outcome(s), fmt.Errorf("%s: %w", at, err)
}

func (w *Wizard) destinationStage(s *session) error {
	names := lo.Map(w.fares.Destinations(), func(d domain.Destination, _ int) string {
		return d.Name
	})
	s.io.Say("We currently fly to: " + strings.Join(names, ", ") + ".")

	dest, err := ask(s, question[domain.Destination]{
		prompt: "Where would you like to travel?",
		retry:  "Would you like to try another destination? (yes/no)",
		policy: PromptedAbortable,
		parse:  w.fares.Lookup,
	})
	if err != nil {
		return err
	}

	return s.draft.SetDestination(dest)
}

func (w *Wizard) dateStage(s *session) error {
	date, err := ask(s, question[time.Time]{
		prompt: "Please enter your travel date (DD/MM/YYYY):",
		retry:  "Would you like to try another date? (yes/no)",
		policy: PromptedAbortable,
		parse: func(in string) (time.Time, error) {
			return domain.ParseTravelDate(in, w.clock.Now())
		},
	})
	if err != nil {
		return err
	}

	return s.draft.SetTravelDate(date)
}

func (w *Wizard) passengerCountStage(s *session) error {
	n, err := ask(s, question[int]{
		prompt: fmt.Sprintf("How many passengers are travelling? (%d-%d)", domain.MinPassengers, domain.MaxPassengers),
		policy: UnboundedSilent,
		parse:  domain.ParsePassengerCount,
	})
	if err != nil {
		return err
	}

	return s.draft.SetPassengerCount(n)
}

func (w *Wizard) passengerNamesStage(s *session) error {
	for i := 1; i <= s.draft.PassengerCount; i++ {
		name, err := ask(s, question[string]{
			prompt: fmt.Sprintf("Enter the full name of passenger %d:", i),
			policy: UnboundedSilent,
			parse:  domain.ParsePassengerName,
		})
		if err != nil {
			return err
		}

		if err = s.draft.AddPassenger(name); err != nil {
			return err
		}
	}

	return nil
}

func (w *Wizard) contactStage(s *session) error {
	email, err := ask(s, question[string]{
		prompt: "Enter your email address:",
		policy: UnboundedSilent,
		parse:  domain.ParseEmail,
	})
	if err != nil {
		return err
	}

	phone, err := ask(s, question[string]{
		prompt: "Enter your 10-digit phone number:",
		policy: UnboundedSilent,
		parse:  domain.ParsePhone,
	})
	if err != nil {
		return err
	}

	return s.draft.SetContact(domain.Contact{Email: email, Phone: phone})
}

func (w *Wizard) summaryStage(s *session) error {
	if _, err := s.draft.Price(w.fares.Policy()); err != nil {
		return err
	}

	s.io.Say(w.presenter.Summary(s.draft))
	return nil
}

func (w *Wizard) confirmStage(s *session) error {
	return gate(s, "Do you want to confirm these booking details? (yes/no)", domain.ErrBookingDeclined)
}

func (w *Wizard) paymentGateStage(s *session) error {
	prompt := fmt.Sprintf("Proceed with payment of INR %d? (yes/no)", s.draft.Cost.Total())
	return gate(s, prompt, domain.ErrPaymentDeclined)
}

// gate passes only on "yes". Any other answer is final and is not re-asked.
func gate(s *session, prompt string, declined error) error {
	answer, err := s.read(prompt)
	if err != nil {
		return err
	}
	if !domain.IsYes(answer) {
		return declined
	}
	return nil
}

func (w *Wizard) paymentMethodStage(s *session) error {
	options := lo.Map(domain.PaymentOptions, func(o domain.PaymentOption, _ int) string {
		return fmt.Sprintf("%s. %s", o.Code, o.Label)
	})
	s.io.Say("Available payment methods:\n" + strings.Join(options, "\n"))

	method, err := ask(s, question[domain.PaymentMethod]{
		prompt: fmt.Sprintf("Select a payment method (1-%d):", len(domain.PaymentOptions)),
		policy: UnboundedSilent,
		parse:  domain.ParsePaymentMethod,
	})
	if err != nil {
		return err
	}

	return s.draft.SetPaymentMethod(method)
}

func (w *Wizard) payStage(s *session) error {
	booking, err := s.draft.Complete(uuid.New().String(), w.refs.Next(), w.clock.Now())
	if err != nil {
		return err
	}
	s.booking = booking

	s.io.Say("Payment successful! Your ticket has been booked.")
	s.io.Say(w.presenter.Confirmation(booking))
	return nil
}
