package usability

import (
	"context"
	"strconv"
	"strings"

	"github.com/u23ai071-IshatS/HCI-Assignments/internal/service/ports"
)

const (
	MinSatisfaction = 1
	MaxSatisfaction = 5
)

// AskSatisfaction keeps asking until it gets an integer in [1, 5].
func AskSatisfaction(ctx context.Context, p ports.Prompter) (int, error) {
	for {
		answer, err := p.Ask(ctx, "Satisfaction (1=very poor … 5=excellent):")
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil && n >= MinSatisfaction && n <= MaxSatisfaction {
			return n, nil
		}

		p.Say("Please enter an integer 1–5.")
	}
}
