package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// Console is a line-based prompter over a reader and a writer. Lines are
// read on a background goroutine so that a pending Ask can give up when its
// context is cancelled.
type Console struct {
	out    io.Writer
	prefix string

	in    io.Reader
	once  sync.Once
	lines chan line
}

func New(in io.Reader, out io.Writer, prefix string) *Console {
	return &Console{
		out:    out,
		prefix: prefix,
		in:     in,
		lines:  make(chan line),
	}
}

func (c *Console) Say(msg string) {
	for _, l := range strings.Split(msg, "\n") {
		fmt.Fprintln(c.out, c.prefix+l)
	}
}

// Ask writes the prompt and waits for the next line. It returns io.EOF once
// the input is exhausted and ctx.Err() when the context ends first.
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	c.once.Do(func() { go c.readLoop() })

	c.Say(prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (c *Console) readLoop() {
	defer close(c.lines)

	sc := bufio.NewScanner(c.in)
	for sc.Scan() {
		c.lines <- line{text: strings.TrimRight(sc.Text(), "\r")}
	}
	if err := sc.Err(); err != nil {
		c.lines <- line{err: fmt.Errorf("read input: %w", err)}
	}
}
