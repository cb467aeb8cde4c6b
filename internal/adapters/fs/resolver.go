package fs

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotResolver = (*Resolver)(nil)

// Resolver implements ports.SnapshotResolver using filepath.Glob and a Walker.
type Resolver struct {
	walker  *Walker
	ignores []string
}

// NewResolver creates a new Resolver. Files and directories matching one of
// ignores are never returned from a directory walk.
func NewResolver(walker *Walker, ignores ...string) *Resolver {
	return &Resolver{walker: walker, ignores: ignores}
}

// Resolve expands patterns into snapshot file paths. A pattern is a file, a
// glob or a directory; directories are walked for snapshot files. Paths keep
// the order of the patterns that produced them, sorted within one pattern,
// and appear only once.
func (r *Resolver) Resolve(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", pattern)
		}

		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrSnapshotNotFound, "cannot resolve snapshot"), "path", pattern)
		}
		sort.Strings(matches)

		for _, match := range matches {
			paths, err := r.expand(match)
			if err != nil {
				return nil, err
			}
			for _, path := range paths {
				if seen[path] {
					continue
				}
				seen[path] = true
				result = append(result, path)
			}
		}
	}

	return result, nil
}

func (r *Resolver) expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat snapshot"), "path", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var walkErr error
	var paths []string
	for file := range r.walker.WalkFiles(path, r.ignores, &walkErr) {
		paths = append(paths, file)
	}
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, "failed to walk snapshot directory"), "path", path)
	}
	return paths, nil
}
