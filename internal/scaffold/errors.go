// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package scaffold

import "fmt"

// ConfigurationError means the registry names a template the templates root
// does not provide.
type ConfigurationError struct {
	Template string
	Err      error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("template %q is not available: %v", e.Template, e.Err)
	}
	return fmt.Sprintf("template %q is not available in the templates directory", e.Template)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
