// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package scaffold

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidPackageName is returned by ValidatePackageName for names npm
// would refuse.
var ErrInvalidPackageName = errors.New("invalid package.json name")

var (
	packageNameRe  = regexp.MustCompile(`^(?:@[a-z\d\-*~][a-z\d\-*._~]*/)?[a-z\d\-~][a-z\d\-._~]*$`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	leadingDotRe   = regexp.MustCompile(`^[._]`)
	invalidCharsRe = regexp.MustCompile(`[^a-z\d\-~]+`)
)

// IsValidPackageName reports whether name is usable as a package.json name.
func IsValidPackageName(name string) bool {
	return packageNameRe.MatchString(name)
}

// ValidatePackageName is the prompt validator for package names.
func ValidatePackageName(name string) error {
	if !IsValidPackageName(name) {
		return ErrInvalidPackageName
	}
	return nil
}

// ToValidPackageName folds a project name into a package name candidate.
// Accents are stripped before anything outside [a-z0-9-~] becomes a dash.
func ToValidPackageName(projectName string) string {
	name := strings.ToLower(strings.TrimSpace(stripMarks(projectName)))
	name = whitespaceRe.ReplaceAllString(name, "-")
	name = leadingDotRe.ReplaceAllString(name, "")
	return invalidCharsRe.ReplaceAllString(name, "-")
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// FormatTargetDir trims whitespace and trailing slashes from a target
// directory. A value made only of slashes means the current directory.
func FormatTargetDir(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}
	trimmed := strings.TrimRight(dir, "/")
	if trimmed == "" {
		return "."
	}
	return trimmed
}
