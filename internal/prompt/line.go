// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	questionColor = color.New(color.FgCyan)
	invalidColor  = color.New(color.FgRed)
	choiceColor   = color.New(color.Faint)
)

// LinePrompter asks questions one line at a time. It is used when stdin is not
// a terminal and with --no-tui.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from r and writes questions to w. The reader is
// shared by every question of the session.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(r), out: w}
}

type lineResult struct {
	line string
	err  error
}

// readLine returns the next trimmed line. End of input cancels the session
// unless it ends a non-empty last line. A done ctx cancels a pending read.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	done := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		done <- lineResult{line: line, err: err}
	}()

	var r lineResult
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	case r = <-done:
	}

	if r.err != nil {
		if errors.Is(r.err, io.EOF) && r.line != "" {
			return strings.TrimSpace(r.line), nil
		}
		if errors.Is(r.err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("failed to read answer: %w", r.err)
	}
	return strings.TrimSpace(r.line), nil
}

func (p *LinePrompter) Text(ctx context.Context, q Text) (string, error) {
	for {
		questionColor.Fprint(p.out, "? ")
		fmt.Fprint(p.out, q.Message)
		if q.Initial != "" {
			choiceColor.Fprintf(p.out, " (%s)", q.Initial)
		}
		fmt.Fprint(p.out, " ")

		answer, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = q.Initial
		}
		if q.Validate != nil {
			if verr := q.Validate(answer); verr != nil {
				invalidColor.Fprintf(p.out, "  %v\n", verr)
				continue
			}
		}
		return answer, nil
	}
}

func (p *LinePrompter) Confirm(ctx context.Context, q Confirm) (bool, error) {
	hint := "y/N"
	if q.Initial {
		hint = "Y/n"
	}
	for {
		questionColor.Fprint(p.out, "? ")
		fmt.Fprintf(p.out, "%s [%s]: ", q.Message, hint)

		answer, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return q.Initial, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		invalidColor.Fprintln(p.out, "  Please answer y or n.")
	}
}

func (p *LinePrompter) Select(ctx context.Context, q Select) (int, error) {
	if len(q.Choices) == 0 {
		return 0, fmt.Errorf("select %q has no choices", q.Message)
	}
	initial := q.Initial
	if initial < 0 || initial >= len(q.Choices) {
		initial = 0
	}

	for {
		questionColor.Fprint(p.out, "? ")
		fmt.Fprintln(p.out, q.Message)
		for i, c := range q.Choices {
			fmt.Fprintf(p.out, "  [%d] %s\n", i+1, c.Title)
		}
		fmt.Fprintf(p.out, "Choose [1-%d] (%d): ", len(q.Choices), initial+1)

		answer, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return initial, nil
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(q.Choices) {
			return n - 1, nil
		}
		invalidColor.Fprintf(p.out, "  Enter a number between 1 and %d.\n", len(q.Choices))
	}
}
