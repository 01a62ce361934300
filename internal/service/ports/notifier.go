package ports

import (
	"context"

	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking)
}
