// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package templates provides the templates root: one directory per template
// identifier, each holding a package.json manifest. The default root is
// compiled into the binary; a directory on disk can replace it.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// all: keeps entries such as _gitignore and docs/.vitepress.
//
//go:embed all:files
var embeddedFiles embed.FS

// Embedded returns the templates root compiled into the binary.
func Embedded() fs.FS {
	root, err := fs.Sub(embeddedFiles, "files")
	if err != nil {
		panic(err)
	}
	return root
}

// Root returns the on-disk override directory when dir is set, otherwise the
// embedded root.
func Root(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("templates directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates directory %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// Exists reports whether root holds a directory for template id.
func Exists(root fs.FS, id string) (bool, error) {
	if !fs.ValidPath(id) || id == "." {
		return false, nil
	}
	info, err := fs.Stat(root, id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
