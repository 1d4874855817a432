// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

const (
	gitDir   = ".git"
	dirMode  = 0o755
	fileMode = 0o644
)

// DefaultRenames maps template file names to the names they get in a new
// project.
var DefaultRenames = map[string]string{
	"_gitignore": ".gitignore",
}

// exists reports whether dir is present on disk.
func exists(dir string) (bool, error) {
	_, err := os.Stat(dir)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// isEmpty reports whether dir has no entries other than .git.
func isEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	return len(entries) == 0 || (len(entries) == 1 && entries[0].Name() == gitDir), nil
}

// emptyDir removes everything in dir except .git.
func emptyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.Name() == gitDir {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// copyTemplate copies every top-level entry of template id except skip into
// dst. Top-level names go through renames; nested names are kept.
func copyTemplate(root fs.FS, id, dst, skip string, renames map[string]string) error {
	entries, err := fs.ReadDir(root, id)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", id, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == skip {
			continue
		}
		target := filepath.Join(dst, renamed(name, renames))
		if err := copyEntry(root, path.Join(id, name), target); err != nil {
			return err
		}
	}
	return nil
}

func renamed(name string, renames map[string]string) string {
	if to, ok := renames[name]; ok && to != "" {
		return to
	}
	return name
}

// copyEntry copies a file or a directory tree from root to dst.
func copyEntry(root fs.FS, src, dst string) error {
	info, err := fs.Stat(root, src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return copyFile(root, src, dst)
	}

	return fs.WalkDir(root, src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(filepath.FromSlash(src), filepath.FromSlash(p))
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			if err := os.MkdirAll(target, dirMode); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
		case d.Type().IsRegular():
			return copyFile(root, p, target)
		}
		// Skip symlinks and other special files.
		return nil
	})
}

func copyFile(root fs.FS, src, dst string) error {
	in, err := root.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
