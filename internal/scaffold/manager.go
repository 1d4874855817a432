// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package scaffold

import "strings"

// UserAgentEnv is the variable package managers set for the tools they run.
const UserAgentEnv = "npm_config_user_agent"

// PackageManager identifies the tool that launched iucli, e.g. pnpm 9.1.0.
type PackageManager struct {
	Name    string
	Version string
}

// PackageManagerFromUserAgent parses a user agent such as
// "pnpm/9.1.0 npm/? node/v20.11.0 linux x64". Only the first token counts.
func PackageManagerFromUserAgent(userAgent string) (PackageManager, bool) {
	fields := strings.Fields(userAgent)
	if len(fields) == 0 {
		return PackageManager{}, false
	}
	name, version, _ := strings.Cut(fields[0], "/")
	if name == "" {
		return PackageManager{}, false
	}
	return PackageManager{Name: name, Version: version}, true
}

// NextSteps returns the commands that install and start a fresh project.
func (pm PackageManager) NextSteps() []string {
	if pm.Name == "yarn" {
		return []string{"yarn", "yarn dev"}
	}
	return []string{pm.Name + " install", pm.Name + " run dev"}
}
