// Package fs provides file system adapters for locating snapshot files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker yields snapshot files below a directory.
type Walker struct {
	extensions []string
}

// NewWalker creates a new Walker matching files with the given extensions.
// Without extensions every file matches.
func NewWalker(extensions ...string) *Walker {
	return &Walker{extensions: extensions}
}

// WalkFiles yields all matching files below root in lexical order, skipping
// VCS directories and any file or directory whose name matches an ignore pattern.
// Walk errors stop the iteration and are reported through errp when non-nil.
func (w *Walker) WalkFiles(root string, ignores []string, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, action := w.skip(d, ignores); skip {
				return action
			}

			if d.IsDir() || !w.matches(d.Name()) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && errp != nil {
			*errp = err
		}
	}
}

// skip reports whether d is excluded and what WalkDir should do about it.
func (w *Walker) skip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}

func (w *Walker) matches(name string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range w.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
