// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"

	"iucli/internal/frameworks"
	"iucli/internal/templates"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the frameworks and templates iucli can scaffold",
		Long: `Lists every framework with its variants. The template id in the right column
is what --template accepts.

With --check, every template directory is also verified: it must exist in the
templates root and hold a valid package.json.`,
		Example: "  iucli list\n  iucli list --check",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, fw := range frameworks.All() {
				label := color.New(ansiColor(fw.Color)).Sprint(fw.Label())
				if len(fw.Variants) == 0 {
					fmt.Fprintf(out, "%-24s %s\n", label, identifierColor.Sprint(fw.ID))
					continue
				}
				fmt.Fprintln(out, label)
				for _, v := range fw.Variants {
					vlabel := color.New(ansiColor(v.Color)).Sprint(v.Label())
					fmt.Fprintf(out, "  %-22s %s\n", vlabel, identifierColor.Sprint(v.ID))
				}
			}

			if !check {
				return nil
			}

			cfg, err := a.loadedConfig()
			if err != nil {
				return err
			}
			root, err := templates.Root(cfg.TemplatesDir)
			if err != nil {
				return err
			}

			ids := frameworks.Templates()
			fmt.Fprintln(out)
			statusColor.Fprintf(out, "Verifying %d templates...\n", len(ids))

			problems := templates.Verify(cmd.Context(), root, ids)
			for _, p := range problems {
				errorColor.Fprintf(out, "✖ %v\n", p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d of %d templates failed verification", len(problems), len(ids))
			}
			successColor.Fprintf(out, "✔ All %d templates are valid.\n", len(ids))
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify every template directory and manifest")
	return cmd
}

// ansiColor maps the 16-color codes of the catalog to fatih/color attributes.
func ansiColor(code string) color.Attribute {
	switch code {
	case "9":
		return color.FgHiRed
	case "10":
		return color.FgHiGreen
	case "11":
		return color.FgHiYellow
	case "12":
		return color.FgHiBlue
	case "13":
		return color.FgHiMagenta
	case "14":
		return color.FgHiCyan
	default:
		return color.Reset
	}
}
