// Package prompt asks the operator yes/no questions before destructive actions.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"nbcli/core/apperr"
)

// ErrInvalidAnswer is returned by ParseYesNo for input that is neither yes nor no.
var ErrInvalidAnswer = errors.New("invalid yes/no answer")

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

type readResult struct {
	line string
	err  error
}

// Confirm asks question until a yes/no answer is given. Unparseable answers
// re-prompt. End of input or a cancelled context returns apperr.ErrCancelled.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		if _, err := fmt.Fprintf(p.out, "%s [YES / NO]: ", question); err != nil {
			return false, err
		}

		line, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}

		answer, err := ParseYesNo(line)
		if err == nil {
			return answer, nil
		}
		if _, err := fmt.Fprintln(p.out, "Please answer with a yes or no"); err != nil {
			return false, err
		}
	}
}

// readLine reads one line, giving up when ctx is cancelled. The reading
// goroutine is abandoned on cancellation; the process exits right after.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", apperr.ErrCancelled, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && strings.TrimSpace(res.line) != "" {
				return res.line, nil
			}
			if errors.Is(res.err, io.EOF) {
				return "", fmt.Errorf("%w: no answer on input", apperr.ErrCancelled)
			}
			return "", res.err
		}
		return res.line, nil
	}
}

// ParseYesNo interprets y, yes, t, true, on, 1 as yes and n, no, f, false,
// off, 0 as no, ignoring case and surrounding whitespace.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidAnswer, strings.TrimSpace(s))
	}
}
