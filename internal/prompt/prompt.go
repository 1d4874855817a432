// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package prompt defines the questions iucli asks and the Prompter that
// answers them. Only one question is outstanding at a time.
package prompt

import (
	"context"
	"errors"
)

// ErrCancelled is returned when the user declines or interrupts a prompt.
var ErrCancelled = errors.New("operation cancelled")

// Text asks for a free-form string. An empty answer takes Initial.
type Text struct {
	Message  string
	Initial  string
	Validate func(string) error
}

// Confirm asks a yes/no question.
type Confirm struct {
	Message string
	Initial bool
}

// Choice is one option of a Select question.
type Choice struct {
	Title string

	// Color is an ANSI 256 color code for the title, empty for none
	Color string
}

// Select asks for exactly one of Choices and yields its index.
type Select struct {
	Message string
	Choices []Choice
	Initial int
}

// Prompter answers questions. Implementations return ErrCancelled when the
// user backs out, including on end of input.
type Prompter interface {
	Text(ctx context.Context, q Text) (string, error)
	Confirm(ctx context.Context, q Confirm) (bool, error)
	Select(ctx context.Context, q Select) (int, error)
}
