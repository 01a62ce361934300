package service

import (
	"errors"

	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
)

// RetryPolicy decides what a stage does after a rejected input.
type RetryPolicy int

const (
	// UnboundedSilent re-prompts until a valid value arrives. The stage never aborts.
	UnboundedSilent RetryPolicy = iota
	// PromptedAbortable asks whether to try again; anything but "yes" aborts.
	// Empty input still re-prompts without asking.
	PromptedAbortable
)

func (p RetryPolicy) String() string {
	switch p {
	case UnboundedSilent:
		return "unbounded_silent"
	case PromptedAbortable:
		return "prompted_abortable"
	default:
		return "unknown"
	}
}

type question[T any] struct {
	prompt string
	retry  string
	policy RetryPolicy
	parse  func(string) (T, error)
}

// ask runs one question until parse accepts an answer, the user declines a
// retry or the prompter fails. Every rejected answer produces exactly one
// explanatory message.
func ask[T any](s *session, q question[T]) (T, error) {
	var zero T

	for {
		answer, err := s.read(q.prompt)
		if err != nil {
			return zero, err
		}

		value, err := q.parse(answer)
		if err == nil {
			return value, nil
		}

		s.reject(err)
		if q.policy == UnboundedSilent || errors.Is(err, domain.ErrEmptyInput) {
			continue
		}

		again, err := s.read(q.retry)
		if err != nil {
			return zero, err
		}
		if !domain.IsYes(again) {
			return zero, domain.ErrRetryDeclined
		}
	}
}
