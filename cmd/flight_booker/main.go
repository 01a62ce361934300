package main

import (
	"fmt"
	"log"
	"os"

	"github.com/u23ai071-IshatS/HCI-Assignments/internal/app"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/config"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/usability"
	"github.com/urfave/cli/v2"
)

func main() {
	bookFlags := []cli.Flag{
		&cli.StringFlag{Name: "participant", Usage: "participant id for usability results"},
		&cli.Uint64Flag{Name: "seed", Usage: "seed for booking references (0 = random)"},
	}

	cliApp := &cli.App{
		Name:   "flight-booker",
		Usage:  "Book a domestic flight through a guided conversation",
		Flags:  bookFlags,
		Action: book,
		Commands: []*cli.Command{
			{
				Name:   "book",
				Usage:  "start the booking conversation",
				Flags:  bookFlags,
				Action: book,
			},
			{
				Name:   "destinations",
				Usage:  "list destinations and base fares",
				Action: destinations,
			},
			{
				Name:  "quote",
				Usage: "price a trip without booking it",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Usage: "destination city", Required: true},
					&cli.IntFlag{Name: "passengers", Usage: "number of passengers", Value: 1},
				},
				Action: quote,
			},
			{
				Name:  "usability",
				Usage: "usability study tools",
				Subcommands: []*cli.Command{
					{
						Name:  "report",
						Usage: "summarize a usability results CSV",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "csv", Usage: "results CSV", Value: "results/usability_raw.csv"},
							&cli.StringFlag{Name: "out", Usage: "output directory", Value: "analysis_outputs"},
						},
						Action: report,
					},
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func book(c *cli.Context) error {
	cfg := config.MustLoad()
	if c.IsSet("participant") {
		cfg.Usability.Participant = c.String("participant")
	}
	if c.IsSet("seed") {
		cfg.Booking.Seed = c.Uint64("seed")
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	_, err = application.RunWizard(os.Stdin, os.Stdout)
	if code := app.ExitCode(err); code == 1 {
		return cli.Exit("", code)
	}
	return err
}

func destinations(c *cli.Context) error {
	application, err := app.New(config.MustLoad())
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	for _, d := range application.Fares().Destinations() {
		fmt.Fprintf(c.App.Writer, "%-12s %s  INR %d\n", d.Name, d.AirportCode, d.BaseFare)
	}
	return nil
}

func quote(c *cli.Context) error {
	application, err := app.New(config.MustLoad())
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	q, err := application.Fares().Quote(c.String("to"), c.Int("passengers"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%s (%s), %d passenger(s)\n", q.Destination.Name, q.Destination.AirportCode, q.Passengers)
	fmt.Fprintf(w, "  Base fare       : INR %d\n", q.Cost.BaseFare)
	fmt.Fprintf(w, "  Subtotal        : INR %d\n", q.Cost.Subtotal)
	fmt.Fprintf(w, "  Taxes           : INR %d\n", q.Cost.Taxes)
	fmt.Fprintf(w, "  Convenience fee : INR %d\n", q.Cost.ConvenienceFee)
	fmt.Fprintf(w, "  Total           : INR %d\n", q.Cost.Total())
	return nil
}

func report(c *cli.Context) error {
	_, err := usability.Analyze(c.String("csv"), c.String("out"), c.App.Writer)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
