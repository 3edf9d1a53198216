package walker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/usr/bin/env bash\n"), mode))
}

func TestWalkYieldsOnlyExecutableFiles(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "bin", "run.sh"), 0o755)
	writeFile(t, filepath.Join(root, "bin", "notes.txt"), 0o644)
	writeFile(t, filepath.Join(root, "deep", "nested", "tool"), 0o700)
	writeFile(t, filepath.Join(root, "group-exec"), 0o010)

	var got []string
	err := Walk(root, func(path string, info fs.FileInfo) error {
		assert.True(t, info.Mode().IsRegular())
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		got = append(got, rel)
		return nil
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join("bin", "run.sh"),
		filepath.Join("deep", "nested", "tool"),
		"group-exec",
	}, got)
}

func TestWalkSkipsSymlinks(t *testing.T) {
	root := t.TempDir()

	target := filepath.Join(root, "real")
	writeFile(t, target, 0o755)
	require.NoError(t, os.Symlink(target, filepath.Join(root, "link")))

	var got []string
	err := Walk(root, func(path string, _ fs.FileInfo) error {
		got = append(got, filepath.Base(path))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"real"}, got)
}

func TestWalkPropagatesCallbackError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a"), 0o755)
	writeFile(t, filepath.Join(root, "b"), 0o755)

	boom := errors.New("boom")
	calls := 0
	err := Walk(root, func(string, fs.FileInfo) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls, "walk must abort on first error")
}

func TestWalkMissingRoot(t *testing.T) {
	err := Walk(filepath.Join(t.TempDir(), "nope"), func(string, fs.FileInfo) error {
		t.Fatal("callback must not run")
		return nil
	})
	assert.Error(t, err)
}
