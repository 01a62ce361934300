package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		Reference:     "FL482913",
		Destination:   domain.Destination{Name: "Goa", AirportCode: "GOI", BaseFare: 6000},
		TravelDate:    time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
		Passengers:    []string{"Asha Rao", "Vikram Rao"},
		Cost:          domain.CostBreakdown{BaseFare: 6000, Subtotal: 12000, Taxes: 1440, ConvenienceFee: 400},
		PaymentMethod: domain.PaymentUPI,
	}
}

func TestConfirmationText(t *testing.T) {
	got := confirmationText(testBooking())

	assert.Equal(t,
		"*Flight booked!*\n\n"+
			"Reference: FL482913\n"+
			"Destination: Goa (GOI)\n"+
			"Date: 24/12/2026\n"+
			"Passengers: Asha Rao, Vikram Rao\n"+
			"Paid: INR 13840 (UPI)",
		got,
	)
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", 12345, newTestLogger(t))
	require.NoError(t, err)
	assert.Nil(t, n.bot)

	assert.NotPanics(t, func() {
		n.NotifyBookingConfirmed(context.Background(), testBooking())
	})
}
