// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package templates

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"iucli/internal/logger"
	"iucli/internal/manifest"

	"golang.org/x/sync/semaphore"
)

// maxConcurrentChecks limits how many template directories are read at once.
const maxConcurrentChecks = 4

// Problem describes one template that breaks the registry invariant.
type Problem struct {
	Template string
	Err      error
}

func (p Problem) Error() string {
	return fmt.Sprintf("template %s: %v", p.Template, p.Err)
}

// Verify checks that every id has a template directory in root whose
// manifest passes schema validation. Problems come back in ids order.
func Verify(ctx context.Context, root fs.FS, ids []string) []Problem {
	results := make([]error, len(ids))
	sem := semaphore.NewWeighted(maxConcurrentChecks)

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = fmt.Errorf("verification cancelled: %w", err)
				return
			}
			defer sem.Release(1)

			results[i] = verifyOne(root, id)
		}()
	}
	wg.Wait()

	var problems []Problem
	for i, err := range results {
		if err != nil {
			logger.Warn("Template failed verification", "template", ids[i], "error", err)
			problems = append(problems, Problem{Template: ids[i], Err: err})
		}
	}
	return problems
}

func verifyOne(root fs.FS, id string) error {
	ok, err := Exists(root, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("directory not found")
	}

	data, err := fs.ReadFile(root, path.Join(id, manifest.FileName))
	if err != nil {
		return fmt.Errorf("reading %s: %w", manifest.FileName, err)
	}

	result, err := manifest.Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid %s: %s", manifest.FileName, result.Issues[0])
	}
	return nil
}
