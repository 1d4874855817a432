// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state is the lifecycle of a single prompt.
type state int

const (
	stateAsking state = iota
	stateAnswered
	stateCancelled
)

const (
	pointer       = "❯"
	tick          = "✔"
	cross         = "✖"
	separator     = "›"
	maxNameLength = 214 // npm rejects longer package names
	inputWidth    = 40
)
