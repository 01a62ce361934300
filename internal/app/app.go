package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os/signal"
	"syscall"
	"time"

	"github.com/u23ai071-IshatS/HCI-Assignments/internal/catalog"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/clock"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/config"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/console"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/notification"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/presenter"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/service"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/service/ports"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/usability"
	"github.com/wb-go/wbf/logger"
)

const (
	appName      = "FlightBooker"
	currency     = "INR"
	speakerLabel = "Chatbot: "
)

type App struct {
	cfg      *config.Config
	log      logger.Logger
	clock    clock.Clock
	fares    *service.FareService
	wizard   *service.Wizard
	notifier ports.BookingNotifier
	recorder *usability.Recorder
}

func New(cfg *config.Config) (*App, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Logger.Env,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	n, err := notification.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
	if err != nil {
		return nil, fmt.Errorf("init notifier: %w", err)
	}

	return build(cfg, log, clock.NewSystem(), n)
}

func build(cfg *config.Config, log logger.Logger, clk clock.Clock, n ports.BookingNotifier) (*App, error) {
	app := &App{cfg: cfg, log: log, clock: clk, notifier: n}

	cat, err := catalog.Load(cfg.Booking.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Debug("catalog loaded",
		logger.String("path", cfg.Booking.CatalogPath),
		logger.Int("destinations", cat.Len()),
	)

	app.fares = service.NewFareService(cat, domain.FarePolicy{
		TaxPercent:                 cfg.Booking.TaxPercent,
		ConvenienceFeePerPassenger: cfg.Booking.ConvenienceFee,
	})
	app.wizard = service.NewWizard(
		app.fares,
		clk,
		newRandom(cfg.Booking.Seed),
		presenter.NewText(currency),
		log,
	)

	if cfg.Usability.Enabled() {
		app.recorder = usability.NewRecorder(cfg.Usability.CSVPath, log)
	}

	return app, nil
}

func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func (a *App) Fares() *service.FareService {
	return a.fares
}

// RunWizard holds one conversation on in/out until it ends or the process
// receives SIGINT or SIGTERM.
func (a *App) RunWizard(in io.Reader, out io.Writer) (service.Outcome, error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.runWizard(ctx, console.New(in, out, speakerLabel))
}

func (a *App) runWizard(ctx context.Context, p ports.Prompter) (service.Outcome, error) {
	start := a.clock.Now()
	outcome, err := a.wizard.Run(ctx, p)
	elapsed := a.clock.Now().Sub(start)

	if outcome.Booking != nil {
		a.notifier.NotifyBookingConfirmed(ctx, outcome.Booking)
	}

	if a.recorder != nil && outcome.State != domain.StateInterrupted {
		if recErr := a.record(ctx, p, elapsed, outcome); recErr != nil {
			a.log.Error("failed to record usability result",
				logger.String("error", recErr.Error()),
			)
		}
	}

	return outcome, err
}

func (a *App) record(ctx context.Context, p ports.Prompter, elapsed time.Duration, outcome service.Outcome) error {
	score, err := usability.AskSatisfaction(ctx, p)
	if err != nil {
		return fmt.Errorf("ask satisfaction: %w", err)
	}

	err = a.recorder.Append(usability.Record{
		Timestamp:    a.clock.Now(),
		Participant:  a.cfg.Usability.Participant,
		Interface:    usability.InterfaceChatbot,
		Duration:     elapsed,
		Errors:       outcome.Rejected,
		Satisfaction: score,
	})
	if err != nil {
		return err
	}

	p.Say("Saved. Thank you!")
	return nil
}

// ExitCode maps a wizard result onto the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if domain.IsAbort(err) || errors.Is(err, context.Canceled) {
		return 1
	}
	return 2
}
