package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Debug("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	n.send(ctx, confirmationText(b))
}

func confirmationText(b *domain.Booking) string {
	var sb strings.Builder
	sb.WriteString("*Flight booked!*\n\n")
	fmt.Fprintf(&sb, "Reference: %s\n", b.Reference)
	fmt.Fprintf(&sb, "Destination: %s (%s)\n", b.Destination.Name, b.Destination.AirportCode)
	fmt.Fprintf(&sb, "Date: %s\n", b.TravelDate.Format(domain.DateLayout))
	fmt.Fprintf(&sb, "Passengers: %s\n", strings.Join(b.Passengers, ", "))
	fmt.Fprintf(&sb, "Paid: INR %d (%s)", b.Total(), b.PaymentMethod.Label())
	return sb.String()
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)")
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)")
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
