// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive prompts with Bubble Tea. Each
// question runs as its own short-lived program so only one prompt is ever
// active, and the answered line stays in the terminal scrollback.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"iucli/internal/prompt"

	tea "github.com/charmbracelet/bubbletea"
)

// Prompter answers prompt questions in a terminal.
type Prompter struct {
	in   io.Reader
	out  io.Writer
	opts []tea.ProgramOption
}

var _ prompt.Prompter = (*Prompter)(nil)

// NewPrompter reads key presses from in and renders to out. Extra program
// options are appended to every program it starts.
func NewPrompter(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *Prompter {
	return &Prompter{in: in, out: out, opts: opts}
}

func (p *Prompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	}, p.opts...)

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil, fmt.Errorf("%w: %v", prompt.ErrCancelled, err)
		}
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return final, nil
}

func (p *Prompter) Text(ctx context.Context, q prompt.Text) (string, error) {
	final, err := p.run(ctx, newTextModel(q))
	if err != nil {
		return "", err
	}
	m := final.(textModel)
	if m.state != stateAnswered {
		return "", prompt.ErrCancelled
	}
	return m.value, nil
}

func (p *Prompter) Confirm(ctx context.Context, q prompt.Confirm) (bool, error) {
	final, err := p.run(ctx, newConfirmModel(q))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.state != stateAnswered {
		return false, prompt.ErrCancelled
	}
	return m.value, nil
}

func (p *Prompter) Select(ctx context.Context, q prompt.Select) (int, error) {
	if len(q.Choices) == 0 {
		return 0, fmt.Errorf("select %q has no choices", q.Message)
	}
	final, err := p.run(ctx, newSelectModel(q))
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if m.state != stateAnswered {
		return 0, prompt.ErrCancelled
	}
	return m.cursor, nil
}
