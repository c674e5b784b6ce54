package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row-console/internal/domain"
)

type lineResult struct {
	text string
}

// Prompter reads answers line by line from whatever reader it was given.
// Lines are pulled on a background goroutine so a blocked read never keeps
// the game loop from noticing a cancelled context.
type Prompter struct {
	out   io.Writer
	lines chan lineResult
	err   error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan lineResult),
	}
	go p.readLoop(in)
	return p
}

func (p *Prompter) readLoop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		p.lines <- lineResult{text: scanner.Text()}
	}
	p.err = scanner.Err()
	if p.err == nil {
		p.err = io.EOF
	}
	close(p.lines)
}

// Line prints the prompt (if any) and waits for the next trimmed line
func (p *Prompter) Line(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(p.out, prompt)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", p.err
		}
		return strings.TrimSpace(res.text), nil
	}
}

// Column keeps asking until it gets a number between 1 and the board width
func (p *Prompter) Column(ctx context.Context, prompt string) (int, error) {
	for {
		input, err := p.Line(ctx, prompt)
		if err != nil {
			return 0, err
		}
		column, err := strconv.Atoi(input)
		if err != nil || column < 1 || column > domain.Columns {
			fmt.Fprintf(p.out, "Invalid input. Please enter a number between 1 and %d.\n", domain.Columns)
			continue
		}
		return column, nil
	}
}
