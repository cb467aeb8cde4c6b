package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sanity/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "a.yaml", "b.txt", "skip/c.yaml", ".jj/d.yaml")

	var walkErr error
	var names []string
	for path := range fs.NewWalker().WalkFiles(tmpDir, []string{"skip"}, &walkErr) {
		names = append(names, filepath.Base(path))
	}
	require.NoError(t, walkErr)
	assert.Equal(t, []string{"a.yaml", "b.txt"}, names)
}

func TestWalker_WalkFiles_Extensions(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "a.yaml", "b.txt", "c.yml")

	var names []string
	for path := range fs.NewWalker(".yml").WalkFiles(tmpDir, nil, nil) {
		names = append(names, filepath.Base(path))
	}
	assert.Equal(t, []string{"c.yml"}, names)
}

func TestWalker_WalkFiles_StopEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "a.yaml", "b.yaml", "c.yaml")

	var walkErr error
	var first []string
	for path := range fs.NewWalker().WalkFiles(tmpDir, nil, &walkErr) {
		first = append(first, path)
		break
	}
	require.NoError(t, walkErr)
	assert.Len(t, first, 1)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	var walkErr error
	for range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil, &walkErr) {
		t.Fatal("no files expected")
	}
	require.Error(t, walkErr)
}
