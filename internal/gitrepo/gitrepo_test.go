package gitrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Run("missing binary", func(t *testing.T) {
		b := &Binary{Path: "definitely-not-git-binary"}

		err := b.Check()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGitNotFound))
	})
}

func TestCloneTargetExists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "taken"), 0o755))

	// A fake git that always succeeds; the existence check fires first.
	fakeGit := filepath.Join(dir, "git")
	require.NoError(t, os.WriteFile(fakeGit, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	b := &Binary{Path: fakeGit}
	err := b.Clone(context.Background(), "https://example.com/repo.git", filepath.Join(dir, "taken"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTargetExists))
}

func TestCloneRemovesGitDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out")

	// A fake git that mimics a clone by creating the target with a .git dir.
	fakeGit := filepath.Join(dir, "git")
	script := "#!/bin/sh\nmkdir -p \"$5/.git\"\ntouch \"$5/README.md\"\nexit 0\n"
	require.NoError(t, os.WriteFile(fakeGit, []byte(script), 0o755))

	b := &Binary{Path: fakeGit}
	require.NoError(t, b.Clone(context.Background(), "https://example.com/repo.git", target))

	assert.NoDirExists(t, filepath.Join(target, ".git"))
	assert.FileExists(t, filepath.Join(target, "README.md"))
}

func TestCloneFailureIncludesStderr(t *testing.T) {
	dir := t.TempDir()

	fakeGit := filepath.Join(dir, "git")
	script := "#!/bin/sh\necho 'fatal: repository not found' >&2\nexit 128\n"
	require.NoError(t, os.WriteFile(fakeGit, []byte(script), 0o755))

	b := &Binary{Path: fakeGit}
	err := b.Clone(context.Background(), "https://example.com/missing.git", filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit code 128")
	assert.Contains(t, err.Error(), "repository not found")
}
