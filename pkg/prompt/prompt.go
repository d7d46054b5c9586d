// Package prompt reads interactive input from a terminal.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// InputFailed is returned when a value can't be read from the input, including
// when the context is cancelled while waiting for the user.
var InputFailed = errors.New("[prompt] - failed to read input")

// Prompter asks the user for values.
type Prompter interface {
	// Line prints the label and reads a single line of input. Trailing whitespace
	// is removed. Line returns early if ctx is cancelled.
	Line(ctx context.Context, label string) (string, error)
	// Secret is like Line, but doesn't echo the input back to the terminal.
	Secret(ctx context.Context, label string) (string, error)
}

// Terminal is a Prompter reading from an input stream and writing labels to an
// output stream. When the input is an interactive terminal, Secret disables
// echo while reading.
//
// Reads run on a separate goroutine so a cancelled context unblocks the caller.
// A read abandoned that way is not lost: its line is handed to the next call.
// If input was typed ahead (e.g. pasted "user\npassword\n" on a non-canonical
// terminal) and is already buffered, Secret takes it from the buffer instead of
// reading the terminal with echo disabled, since it has already been echoed.
type Terminal struct {
	out     io.Writer
	in      *bufio.Reader
	fd      int
	tty     bool
	pending chan readResult
}

type readResult struct {
	value string
	err   error
}

var _ Prompter = (*Terminal)(nil)

// NewTerminal creates a new Terminal prompter.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{out: out, in: bufio.NewReader(in)}
	if f, ok := in.(*os.File); ok {
		t.fd = int(f.Fd())
		t.tty = term.IsTerminal(t.fd)
	}
	return t
}

// Line implements Prompter.
func (t *Terminal) Line(ctx context.Context, label string) (string, error) {
	if _, err := fmt.Fprintln(t.out, label); err != nil {
		return "", errors.Mark(errors.Wrap(err, "[prompt] - failed to write label"), InputFailed)
	}
	return t.await(ctx, label, t.readLine)
}

// Secret implements Prompter.
func (t *Terminal) Secret(ctx context.Context, label string) (string, error) {
	if !t.tty || t.pending != nil || t.in.Buffered() > 0 {
		return t.Line(ctx, label)
	}
	if _, err := fmt.Fprint(t.out, label); err != nil {
		return "", errors.Mark(errors.Wrap(err, "[prompt] - failed to write label"), InputFailed)
	}
	state, err := term.GetState(t.fd)
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "[prompt] - failed to get terminal state"), InputFailed)
	}
	v, err := t.await(ctx, label, t.readPassword)
	if ctx.Err() != nil {
		// The abandoned ReadPassword still has echo turned off.
		_ = term.Restore(t.fd, state)
	}
	// ReadPassword swallows the newline, so put one back for the next label.
	_, _ = fmt.Fprintln(t.out)
	return v, err
}

func (t *Terminal) await(
	ctx context.Context,
	label string,
	read func() (string, error),
) (string, error) {
	if t.pending == nil {
		c := make(chan readResult, 1)
		go func() {
			v, err := read()
			c <- readResult{value: v, err: err}
		}()
		t.pending = c
	}
	select {
	case r := <-t.pending:
		t.pending = nil
		if r.err != nil {
			return "", errors.Mark(errors.Wrapf(r.err, "[prompt] - %s", label), InputFailed)
		}
		return r.value, nil
	case <-ctx.Done():
		return "", errors.Mark(errors.Wrapf(ctx.Err(), "[prompt] - %s", label), InputFailed)
	}
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return trim(line), nil
}

func (t *Terminal) readPassword() (string, error) {
	b, err := term.ReadPassword(t.fd)
	if err != nil {
		return "", err
	}
	return trim(string(b)), nil
}

func trim(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }
