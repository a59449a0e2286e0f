// Package repl is the line-mode shell: it reads one command per line and
// prints the game's reply, optionally coloured and word-wrapped.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/session"
)

// Prompt is written before each line is read.
const Prompt = "> "

// Options controls output formatting.
type Options struct {
	// Width wraps output at this column. 0 disables wrapping.
	Width int
	// Color enables ANSI colour.
	Color bool
}

// REPL plays a session over a reader and a writer.
type REPL struct {
	sess   *session.Session
	in     io.Reader
	out    io.Writer
	opts   Options
	logger *zap.Logger

	// ctx is cancelled by Stop, which may run before Start.
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a REPL for sess.
//
// Precondition: sess, in, out, and logger must be non-nil.
func New(sess *session.Session, in io.Reader, out io.Writer, opts Options, logger *zap.Logger) *REPL {
	ctx, cancel := context.WithCancel(context.Background())
	return &REPL{
		sess:   sess,
		in:     in,
		out:    out,
		opts:   opts,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start runs the shell until the input ends or Stop is called.
// It satisfies server.Service.
func (r *REPL) Start() error {
	defer r.cancel()
	return r.Run(r.ctx)
}

// Stop makes Start return, or return immediately if it has not run yet.
func (r *REPL) Stop() {
	r.cancel()
}

// Run plays until the input ends, the player quits or wins, or ctx is done.
//
// Postcondition: Returns nil on a normal end, or the first read/write error.
func (r *REPL) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, e := range r.sess.Transcript() {
		if err := r.writeEntry(e); err != nil {
			return err
		}
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if _, err := io.WriteString(r.out, Prompt); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			_, _ = io.WriteString(r.out, "\n")
			return nil
		case line := <-lines:
			done, err := r.handle(line)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// handle processes one input line and reports whether the shell should end.
func (r *REPL) handle(line string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit":
		r.logger.Info("player quit", zap.String("session", r.sess.ID().String()))
		return true, nil
	case "help", "?":
		return false, r.writeLines(Dim, helpLines())
	}

	out := r.sess.Submit(line)
	color := BrightWhite
	if r.sess.HasWon() {
		color = Green
	}
	if err := r.writeLines(color, out); err != nil {
		return false, err
	}
	return r.sess.HasWon(), nil
}

func (r *REPL) writeEntry(e session.Entry) error {
	if e.Author == session.AuthorPlayer {
		return r.writeLines(Cyan, []string{Prompt + e.Text})
	}
	return r.writeLines(BrightWhite, session.SplitMessage(e.Text))
}

func (r *REPL) writeLines(color string, lines []string) error {
	for _, l := range lines {
		if r.opts.Width > 0 {
			l = wordwrap.String(l, r.opts.Width)
		}
		if r.opts.Color {
			l = Colorize(color, l)
		}
		if _, err := fmt.Fprintln(r.out, l); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

func helpLines() []string {
	lines := []string{"Commands:"}
	for _, cmd := range command.LegalCommands() {
		lines = append(lines, fmt.Sprintf("  %-10s %s (%s)", cmd.Name, cmd.Help, strings.Join(cmd.Aliases, ", ")))
	}
	lines = append(lines, "  quit       Leave the game")
	return lines
}
