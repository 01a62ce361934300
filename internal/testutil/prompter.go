package testutil

import (
	"context"
	"io"
	"strings"
)

// ScriptedPrompter answers prompts from a fixed script and records the
// conversation. Once the script runs out, Ask returns io.EOF.
type ScriptedPrompter struct {
	answers []string
	next    int

	Asked []string
	Said  []string
}

func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

func (p *ScriptedPrompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.Asked = append(p.Asked, prompt)
	if p.next >= len(p.answers) {
		return "", io.EOF
	}

	answer := p.answers[p.next]
	p.next++
	return answer, nil
}

func (p *ScriptedPrompter) Say(msg string) {
	p.Said = append(p.Said, msg)
}

// Remaining reports how many scripted answers were never consumed.
func (p *ScriptedPrompter) Remaining() int {
	return len(p.answers) - p.next
}

// SaidContaining counts messages that contain substr.
func (p *ScriptedPrompter) SaidContaining(substr string) int {
	n := 0
	for _, m := range p.Said {
		if strings.Contains(m, substr) {
			n++
		}
	}
	return n
}

// AskedContaining counts prompts that contain substr.
func (p *ScriptedPrompter) AskedContaining(substr string) int {
	n := 0
	for _, q := range p.Asked {
		if strings.Contains(q, substr) {
			n++
		}
	}
	return n
}
