package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// Prompter asks questions on a terminal. Input is read in the background so
// a pending question can be abandoned when the context is cancelled.
type Prompter struct {
	out     io.Writer
	lines   chan line
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	prompter := &Prompter{
		out:     out,
		lines:   make(chan line),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go prompter.readLines(in)

	return prompter
}

// Close stops handing out input. A reader blocked inside Read is left to the
// owner of the input.
func (that *Prompter) Close() {
	that.once.Do(func() { close(that.done) })
}

func (that *Prompter) readLines(in io.Reader) {
	defer close(that.stopped)
	defer close(that.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !that.send(line{text: scanner.Text()}) {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		that.send(line{err: err})
	}
}

func (that *Prompter) send(l line) bool {
	select {
	case that.lines <- l:
		return true
	case <-that.done:
		return false
	}
}

// Ask prints prompt and waits for one line of input. It returns io.EOF once
// the input is exhausted.
func (that *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("prompt cancelled: %w", ctx.Err())
	case l, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", fmt.Errorf("failed to read input: %w", l.err)
		}
		return l.text, nil
	}
}

// NumberBetween repeatedly asks for a number between minimum and maximum (inclusive).
func (that *Prompter) NumberBetween(ctx context.Context, prompt string, minimum, maximum int) (int, error) {
	input, err := that.Ask(ctx, prompt)

	for {
		if err != nil {
			return 0, err
		}

		var errMessage string

		n, convErr := strconv.Atoi(strings.TrimSpace(input))
		switch {
		case convErr != nil:
			errMessage = fmt.Sprintf("%s is not a number.", input)
		case n < minimum:
			errMessage = fmt.Sprintf("Must be at least %d", minimum)
		case n > maximum:
			errMessage = fmt.Sprintf("Must be at most %d", maximum)
		default:
			return n, nil
		}

		input, err = that.Ask(ctx, fmt.Sprintf("%s\n%s", errMessage, prompt))
	}
}
