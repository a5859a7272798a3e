package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gookit/color"
)

const prompt = "\nEnter a command. Type 'help' to see supported commands, 'exit' to stop the bot.\n> "

// Session is the read-eval-print loop around a Dispatcher.
type Session struct {
	dispatcher *Dispatcher
	log        *slog.Logger
	colours    bool
}

func NewSession(dispatcher *Dispatcher, log *slog.Logger, colours bool) *Session {
	return &Session{dispatcher: dispatcher, log: log, colours: colours}
}

// Run processes lines from in until an exit command, the end of input or ctx cancellation.
// One command is fully handled before the next line is taken.
// Lines are read on their own goroutine so that a cancellation is seen while waiting at the prompt.
// It returns only unrecoverable errors, such as storage I/O failures.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines, readErr := readLines(readCtx, in)
	for {
		if err := ctx.Err(); err != nil {
			s.log.Info("Session interrupted")
			return nil
		}
		if _, err := fmt.Fprint(out, prompt); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			s.log.Info("Session interrupted")
			return nil
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				s.log.Info("End of input, stopping the bot")
				return nil
			}
			line = l
		}

		result, err := s.dispatcher.Handle(line)
		if err != nil {
			return err
		}
		if result.Output != "" {
			if _, err = fmt.Fprintln(out, s.paint(result)); err != nil {
				return err
			}
		}
		if result.Exit {
			return nil
		}
	}
}

// readLines scans in until its end or ctx cancellation.
// The error channel receives the scanner's error before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

func (s *Session) paint(result Result) string {
	if !s.colours {
		return result.Output
	}
	switch {
	case result.Failed:
		return color.FgRed.Render(result.Output)
	case result.Exit:
		return color.FgCyan.Render(result.Output)
	default:
		return color.FgGreen.Render(result.Output)
	}
}
