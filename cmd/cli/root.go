// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"iucli/internal/config"
	"iucli/internal/logger"
	"iucli/internal/prompt"
	"iucli/internal/scaffold"
	"iucli/internal/templates"
	"iucli/internal/ui"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is overridden at build time with
// -ldflags "-X iucli/cmd/cli.Version=...".
var Version = "0.1.0"

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

// app is the state shared by the command tree of one invocation.
type app struct {
	cfg     config.Config
	cfgErr  error
	verbose bool
}

// loadedConfig returns the configuration, or the error that loading hit.
func (a *app) loadedConfig() (config.Config, error) {
	if a.cfgErr != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", a.cfgErr)
	}
	return a.cfg, nil
}

// NewRootCmd builds the iucli command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var (
		template string
		noTUI    bool
	)

	rootCmd := &cobra.Command{
		Use:   "iucli [path]",
		Short: "Scaffold a new project from a template",
		Long: `Creates a new project in [path] from one of the bundled templates.

Anything not given on the command line is asked for interactively. Prompts use
a full terminal UI when stdin and stdout are terminals, and plain line input
otherwise (or with --no-tui).

A target directory named like a subcommand has to be written as ./list or
./config.`,
		Example: "  iucli\n  iucli my-app --template vue-ts\n  iucli . -t vitepress-starter",
		Args:    cobra.MaximumNArgs(1),
		Version: Version,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg, a.cfgErr = config.Load()
			level := a.cfg.LogLevel
			if a.cfgErr != nil {
				level = ""
			}
			logger.InitLogger(logger.Options{Level: level, File: true, Stderr: a.verbose})
			logger.Debug("Starting command", "command", cmd.CommandPath(), "args", args)
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadedConfig()
			if err != nil {
				return err
			}
			var target string
			if len(args) > 0 {
				target = args[0]
			}
			return runScaffold(cmd, cfg, scaffold.Args{TargetDir: target, Template: template}, noTUI)
		},
	}

	rootCmd.Flags().StringVarP(&template, "template", "t", "", "project template, one of: "+templateList())
	rootCmd.Flags().BoolVar(&noTUI, "no-tui", false, "ask questions with plain line input")
	rootCmd.Flags().BoolP("version", "v", false, "print the version and exit")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "also write logs to stderr")
	rootCmd.SetVersionTemplate("iucli {{.Version}}\n")

	_ = rootCmd.RegisterFlagCompletionFunc("template", templateCompletionFunc)

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// RunCLI executes the command tree and exits non-zero on failure.
func RunCLI() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("Command failed", "error", err)
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runScaffold(cmd *cobra.Command, cfg config.Config, args scaffold.Args, noTUI bool) error {
	root, err := templates.Root(cfg.TemplatesDir)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	out := cmd.OutOrStdout()
	o := &scaffold.Orchestrator{
		Templates: root,
		Prompter:  newPrompter(cmd.InOrStdin(), out, noTUI),
		Env: scaffold.Env{
			Cwd:       cwd,
			UserAgent: os.Getenv(scaffold.UserAgentEnv),
			Stdout:    out,
		},
		Renames:          cfg.Rename,
		DefaultTargetDir: cfg.DefaultProjectName,
		DefaultManager:   cfg.DefaultManager,
		Progress:         newProgress(out),
	}

	res, err := o.Run(cmd.Context(), args)
	if errors.Is(err, prompt.ErrCancelled) {
		logger.Info("Scaffold cancelled", "reason", err)
		fmt.Fprintf(out, "%s Operation cancelled\n", errorColor.Sprint("✖"))
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("Scaffold finished", "root", res.Root, "template", res.Template, "package", res.PackageName)
	return nil
}

// newPrompter picks the terminal UI when both ends are terminals.
func newPrompter(in io.Reader, out io.Writer, noTUI bool) prompt.Prompter {
	if !noTUI && isTerminal(in) && isTerminal(out) {
		return ui.NewPrompter(in, out)
	}
	return prompt.NewLinePrompter(in, out)
}

// newProgress returns a spinner factory for terminals and nil otherwise.
func newProgress(w io.Writer) func(string) func() {
	if !isTerminal(w) {
		return nil
	}
	return func(msg string) func() {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
		s.Color("cyan")
		s.Suffix = " " + msg + "..."
		s.Start()
		return s.Stop
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
