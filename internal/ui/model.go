// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"iucli/internal/prompt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Text ---

type textModel struct {
	question prompt.Text
	input    textinput.Model
	value    string
	err      error
	state    state
	keymap   KeyMap
}

func newTextModel(q prompt.Text) textModel {
	t := textinput.New()
	t.Prompt = ""
	t.Placeholder = q.Initial
	t.CharLimit = maxNameLength
	t.Width = inputWidth
	t.Focus()

	return textModel{question: q, input: t, keymap: DefaultKeyMap}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keymap.Cancel):
			m.state = stateCancelled
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Enter):
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				value = m.question.Initial
			}
			if m.question.Validate != nil {
				if err := m.question.Validate(value); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.value = value
			m.state = stateAnswered
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.err = nil
	}
	return m, cmd
}

func (m textModel) View() string {
	switch m.state {
	case stateAnswered:
		return answeredLine(m.question.Message, m.value)
	case stateCancelled:
		return cancelledLine(m.question.Message)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", questionStyle.Render("?"), messageStyle.Render(m.question.Message), m.input.View())
	if m.err != nil {
		fmt.Fprintf(&b, "\n%s", errorStyle.Render(fmt.Sprintf("%s %v", separator, m.err)))
	}
	b.WriteString("\n")
	return b.String()
}

// --- Confirm ---

type confirmModel struct {
	question prompt.Confirm
	value    bool
	state    state
	keymap   KeyMap
}

func newConfirmModel(q prompt.Confirm) confirmModel {
	return confirmModel{question: q, value: q.Initial, keymap: DefaultKeyMap}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Cancel):
		m.state = stateCancelled
		return m, tea.Quit
	case key.Matches(keyMsg, m.keymap.Yes):
		m.value = true
		m.state = stateAnswered
		return m, tea.Quit
	case key.Matches(keyMsg, m.keymap.No):
		m.value = false
		m.state = stateAnswered
		return m, tea.Quit
	case key.Matches(keyMsg, m.keymap.Toggle):
		m.value = !m.value
	case key.Matches(keyMsg, m.keymap.Enter):
		m.state = stateAnswered
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	switch m.state {
	case stateAnswered:
		answer := "no"
		if m.value {
			answer = "yes"
		}
		return answeredLine(m.question.Message, answer)
	case stateCancelled:
		return cancelledLine(m.question.Message)
	}

	no, yes := "No", "Yes"
	if m.value {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	return fmt.Sprintf("%s %s %s %s / %s\n",
		questionStyle.Render("?"), messageStyle.Render(m.question.Message), dimStyle.Render(separator), no, yes)
}

// --- Select ---

type selectModel struct {
	question prompt.Select
	cursor   int
	state    state
	keymap   KeyMap
}

func newSelectModel(q prompt.Select) selectModel {
	cursor := q.Initial
	if cursor < 0 || cursor >= len(q.Choices) {
		cursor = 0
	}
	return selectModel{question: q, cursor: cursor, keymap: DefaultKeyMap}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.question.Choices)
	switch {
	case key.Matches(keyMsg, m.keymap.Cancel):
		m.state = stateCancelled
		return m, tea.Quit
	case key.Matches(keyMsg, m.keymap.Up):
		m.cursor = (m.cursor - 1 + n) % n
	case key.Matches(keyMsg, m.keymap.Down):
		m.cursor = (m.cursor + 1) % n
	case key.Matches(keyMsg, m.keymap.Enter):
		m.state = stateAnswered
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	switch m.state {
	case stateAnswered:
		return answeredLine(m.question.Message, m.question.Choices[m.cursor].Title)
	case stateCancelled:
		return cancelledLine(m.question.Message)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", questionStyle.Render("?"), messageStyle.Render(m.question.Message),
		dimStyle.Render("(↑/↓ to move, enter to select)"))
	for i, c := range m.question.Choices {
		cursor := " "
		if i == m.cursor {
			cursor = cursorStyle.Render(pointer)
		}
		fmt.Fprintf(&b, "%s %s\n", cursor, choiceStyle(c.Color).Render(c.Title))
	}
	return b.String()
}

// --- Shared views ---

func answeredLine(message, answer string) string {
	return fmt.Sprintf("%s %s %s %s\n",
		successStyle.Render(tick), messageStyle.Render(message), dimStyle.Render(separator), answerStyle.Render(answer))
}

func cancelledLine(message string) string {
	return fmt.Sprintf("%s %s\n", errorStyle.Render(cross), messageStyle.Render(message))
}
