// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package scaffold creates a new project from a template. A run asks its
// questions first and touches the filesystem only once every answer is in,
// so a cancelled run leaves the target directory as it was.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"iucli/internal/frameworks"
	"iucli/internal/logger"
	"iucli/internal/manifest"
	"iucli/internal/prompt"
	"iucli/internal/templates"

	"github.com/fatih/color"
)

const (
	// DefaultTargetDir is the project name offered when none is given.
	DefaultTargetDir = "my-iu-app"

	// DefaultManager is used when no package manager launched iucli.
	DefaultManager = "npm"
)

// Env is the process state a run depends on.
type Env struct {
	// Cwd resolves relative target directories.
	Cwd string

	// UserAgent is the value of npm_config_user_agent, possibly empty.
	UserAgent string

	Stdout io.Writer
}

// Args are the command line inputs of a run.
type Args struct {
	TargetDir string
	Template  string
}

// Answers holds what the prompt chain resolved.
type Answers struct {
	ProjectName string
	Overwrite   bool
	PackageName string
	Framework   *frameworks.Framework
	Variant     string
}

// Result describes a finished run.
type Result struct {
	Root        string
	Template    string
	PackageName string
	Manager     PackageManager
}

// Orchestrator runs the prompt chain and writes the project.
type Orchestrator struct {
	Templates fs.FS
	Prompter  prompt.Prompter
	Env       Env

	// Renames overrides DefaultRenames when non-nil.
	Renames map[string]string

	DefaultTargetDir string
	DefaultManager   string

	// Progress is called before the copy starts. The returned func runs when
	// the copy is over.
	Progress func(msg string) func()
}

// session is the mutable state of one run.
type session struct {
	prompter         prompt.Prompter
	cwd              string
	defaultTargetDir string
	argTargetDir     string
	argTemplate      string
	targetDir        string
	answers          Answers
}

func (s *session) root() string {
	if filepath.IsAbs(s.targetDir) {
		return filepath.Clean(s.targetDir)
	}
	return filepath.Join(s.cwd, s.targetDir)
}

// projectName is the base name of the target directory.
func (s *session) projectName() string {
	return filepath.Base(s.root())
}

// templateID picks the variant, then the framework, then the flag.
func (s *session) templateID() string {
	switch {
	case s.answers.Variant != "":
		return s.answers.Variant
	case s.answers.Framework != nil:
		return s.answers.Framework.ID
	default:
		return s.argTemplate
	}
}

// Run asks the prompt chain and scaffolds the project. A cancelled prompt
// returns an error wrapping prompt.ErrCancelled.
func (o *Orchestrator) Run(ctx context.Context, args Args) (*Result, error) {
	if o.Templates == nil || o.Prompter == nil {
		return nil, fmt.Errorf("scaffold: templates root and prompter are required")
	}

	s, err := o.newSession(args)
	if err != nil {
		return nil, err
	}

	if err := o.ask(ctx, s); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", prompt.ErrCancelled, err)
	}

	return o.write(s)
}

func (o *Orchestrator) newSession(args Args) (*session, error) {
	cwd := o.Env.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		cwd = wd
	}

	def := FormatTargetDir(o.DefaultTargetDir)
	if def == "" {
		def = DefaultTargetDir
	}

	s := &session{
		prompter:         o.Prompter,
		cwd:              cwd,
		defaultTargetDir: def,
		argTargetDir:     FormatTargetDir(args.TargetDir),
		argTemplate:      args.Template,
	}
	s.targetDir = s.argTargetDir
	if s.targetDir == "" {
		s.targetDir = def
	}
	return s, nil
}

func (o *Orchestrator) ask(ctx context.Context, s *session) error {
	for _, st := range chain {
		skip, err := st.skip(s)
		if err != nil {
			return err
		}
		if skip {
			logger.Debug("Skipping prompt", "step", st.id.String())
			continue
		}
		if err := st.ask(ctx, s); err != nil {
			logger.Debug("Prompt ended the run", "step", st.id.String(), "error", err)
			return err
		}
	}
	return nil
}

func (o *Orchestrator) write(s *session) (*Result, error) {
	id := s.templateID()
	ok, err := templates.Exists(o.Templates, id)
	if err != nil {
		return nil, &ConfigurationError{Template: id, Err: err}
	}
	if !ok {
		return nil, &ConfigurationError{Template: id}
	}

	root := s.root()
	if s.answers.Overwrite {
		if err := emptyDir(root); err != nil {
			return nil, err
		}
	} else if err := os.MkdirAll(root, dirMode); err != nil {
		return nil, fmt.Errorf("creating %s: %w", root, err)
	}

	out := o.stdout()
	fmt.Fprintf(out, "\nScaffolding project in %s...\n", root)
	logger.Info("Scaffolding project", "root", root, "template", id)

	renames := o.Renames
	if renames == nil {
		renames = DefaultRenames
	}

	stop := func() {}
	if o.Progress != nil {
		stop = o.Progress("Copying template " + id)
	}
	err = copyTemplate(o.Templates, id, root, manifest.FileName, renames)
	stop()
	if err != nil {
		return nil, err
	}

	name := s.answers.PackageName
	if name == "" {
		name = s.projectName()
	}
	if err := writeManifest(o.Templates, id, root, name); err != nil {
		return nil, err
	}

	pm, ok := PackageManagerFromUserAgent(o.Env.UserAgent)
	if !ok {
		pm = PackageManager{Name: o.DefaultManager}
		if pm.Name == "" {
			pm.Name = DefaultManager
		}
	}

	printNextSteps(out, s.cwd, root, pm)

	return &Result{Root: root, Template: id, PackageName: name, Manager: pm}, nil
}

func (o *Orchestrator) stdout() io.Writer {
	if o.Env.Stdout == nil {
		return io.Discard
	}
	return o.Env.Stdout
}

func writeManifest(root fs.FS, id, dst, name string) error {
	data, err := fs.ReadFile(root, path.Join(id, manifest.FileName))
	if err != nil {
		return fmt.Errorf("reading %s of template %s: %w", manifest.FileName, id, err)
	}

	doc, err := manifest.Parse(data)
	if err != nil {
		return fmt.Errorf("template %s: %w", id, err)
	}
	if err := doc.SetName(name); err != nil {
		return err
	}

	out, err := doc.Marshal()
	if err != nil {
		return err
	}
	target := filepath.Join(dst, manifest.FileName)
	if err := os.WriteFile(target, out, fileMode); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

func printNextSteps(w io.Writer, cwd, root string, pm PackageManager) {
	fmt.Fprintf(w, "\n%s Now run:\n\n", color.GreenString("Done."))
	if filepath.Clean(root) != filepath.Clean(cwd) {
		rel, err := filepath.Rel(cwd, root)
		if err != nil {
			rel = root
		}
		fmt.Fprintf(w, "  cd %s\n", rel)
	}
	for _, cmd := range pm.NextSteps() {
		fmt.Fprintf(w, "  %s\n", cmd)
	}
	fmt.Fprintln(w)
}
