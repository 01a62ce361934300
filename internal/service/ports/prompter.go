package ports

import "context"

// Prompter is the line-based conversation the wizard is driven by.
// Ask prints a question and blocks until one line of answer is available.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
	Say(msg string)
}
