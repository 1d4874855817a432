// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package scaffold

import (
	"context"
	"fmt"

	"iucli/internal/frameworks"
	"iucli/internal/logger"
	"iucli/internal/prompt"
)

// Step names one question of the prompt chain.
type Step int

const (
	StepProjectName Step = iota
	StepOverwrite
	StepPackageName
	StepFramework
	StepVariant
)

func (s Step) String() string {
	switch s {
	case StepProjectName:
		return "project-name"
	case StepOverwrite:
		return "overwrite"
	case StepPackageName:
		return "package-name"
	case StepFramework:
		return "framework"
	case StepVariant:
		return "variant"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// step is a question that is asked unless skip says otherwise. skip sees the
// answers collected so far.
type step struct {
	id   Step
	skip func(s *session) (bool, error)
	ask  func(ctx context.Context, s *session) error
}

// chain is the ordered prompt sequence.
var chain = []step{
	{id: StepProjectName, skip: skipProjectName, ask: askProjectName},
	{id: StepOverwrite, skip: skipOverwrite, ask: askOverwrite},
	{id: StepPackageName, skip: skipPackageName, ask: askPackageName},
	{id: StepFramework, skip: skipFramework, ask: askFramework},
	{id: StepVariant, skip: skipVariant, ask: askVariant},
}

func skipProjectName(s *session) (bool, error) {
	return s.argTargetDir != "", nil
}

func askProjectName(ctx context.Context, s *session) error {
	name, err := s.prompter.Text(ctx, prompt.Text{
		Message: "Project name:",
		Initial: s.defaultTargetDir,
	})
	if err != nil {
		return err
	}
	s.answers.ProjectName = name
	s.targetDir = FormatTargetDir(name)
	if s.targetDir == "" {
		s.targetDir = s.defaultTargetDir
	}
	return nil
}

func skipOverwrite(s *session) (bool, error) {
	ok, err := exists(s.root())
	if err != nil || !ok {
		return true, err
	}
	empty, err := isEmpty(s.root())
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", s.root(), err)
	}
	return empty, nil
}

func askOverwrite(ctx context.Context, s *session) error {
	subject := fmt.Sprintf("Target directory %q", s.targetDir)
	if s.targetDir == "." {
		subject = "Current directory"
	}

	overwrite, err := s.prompter.Confirm(ctx, prompt.Confirm{
		Message: subject + " is not empty. Remove existing files and continue?",
	})
	if err != nil {
		return err
	}
	if !overwrite {
		return prompt.ErrCancelled
	}
	s.answers.Overwrite = true
	return nil
}

func skipPackageName(s *session) (bool, error) {
	return IsValidPackageName(s.projectName()), nil
}

func askPackageName(ctx context.Context, s *session) error {
	name, err := s.prompter.Text(ctx, prompt.Text{
		Message:  "Package name:",
		Initial:  ToValidPackageName(s.projectName()),
		Validate: ValidatePackageName,
	})
	if err != nil {
		return err
	}
	s.answers.PackageName = name
	return nil
}

func skipFramework(s *session) (bool, error) {
	return s.argTemplate != "" && frameworks.IsTemplate(s.argTemplate), nil
}

func askFramework(ctx context.Context, s *session) error {
	message := "Select a framework:"
	if s.argTemplate != "" {
		logger.Warn("Unknown template, falling back to selection", "template", s.argTemplate)
		message = fmt.Sprintf("Template %q not found. Please choose from below:", s.argTemplate)
	}

	all := frameworks.All()
	choices := make([]prompt.Choice, len(all))
	for i, fw := range all {
		choices[i] = prompt.Choice{Title: fw.Label(), Color: fw.Color}
	}

	i, err := s.prompter.Select(ctx, prompt.Select{Message: message, Choices: choices})
	if err != nil {
		return err
	}
	if i < 0 || i >= len(all) {
		return fmt.Errorf("framework choice %d out of range", i)
	}
	s.answers.Framework = &all[i]
	return nil
}

func skipVariant(s *session) (bool, error) {
	return s.answers.Framework == nil || len(s.answers.Framework.Variants) == 0, nil
}

func askVariant(ctx context.Context, s *session) error {
	variants := s.answers.Framework.Variants
	choices := make([]prompt.Choice, len(variants))
	for i, v := range variants {
		choices[i] = prompt.Choice{Title: v.Label(), Color: v.Color}
	}

	i, err := s.prompter.Select(ctx, prompt.Select{Message: "Select a variant:", Choices: choices})
	if err != nil {
		return err
	}
	if i < 0 || i >= len(variants) {
		return fmt.Errorf("variant choice %d out of range", i)
	}
	s.answers.Variant = variants[i].ID
	return nil
}
