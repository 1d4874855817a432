// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strings"

	"iucli/internal/config"
	"iucli/internal/frameworks"

	"github.com/spf13/cobra"
)

// templateList renders the known template ids for help text.
func templateList() string {
	return strings.Join(frameworks.Templates(), ", ")
}

// templateCompletionFunc completes --template with the known template ids,
// described by the framework and variant they belong to.
func templateCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var suggestions []string
	for _, id := range frameworks.Templates() {
		if !strings.HasPrefix(id, toComplete) {
			continue
		}
		fw, v, _ := frameworks.Lookup(id)
		desc := fw.Label()
		if v.ID != "" {
			desc += " " + v.Label()
		}
		suggestions = append(suggestions, id+"\t"+desc)
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// configKeyCompletionFunc completes the key argument of config get/set.
func configKeyCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var suggestions []string
	for _, key := range config.Keys() {
		if strings.HasPrefix(key, toComplete) {
			suggestions = append(suggestions, key)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
