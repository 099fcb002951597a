package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers line by line. Lines are read on a separate
// goroutine so a pending question can be abandoned when ctx is canceled.
type Prompter struct {
	out   io.Writer
	lines chan string
}

// NewPrompter starts reading in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{out: out, lines: make(chan string)}
	go p.read(in)
	return p
}

func (p *Prompter) read(in io.Reader) {
	defer close(p.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		p.lines <- scanner.Text()
	}
}

// Ask prints question and returns the trimmed answer. It returns io.EOF
// once the input is exhausted and ctx.Err() when ctx is done first.
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if question != "" {
		fmt.Fprint(p.out, question)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// Confirm asks a yes/no question. Only an explicit yes returns true.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.Ask(ctx, question)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "예", "네", "ㅇ":
		return true, nil
	}
	return false, nil
}
