// Package gitrepo wraps calls to the external git binary for fetching
// template repositories.
package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrGitNotFound is returned when the git binary is not found.
	ErrGitNotFound = errors.New("git binary not found")
	// ErrTargetExists is returned when the clone target already exists.
	ErrTargetExists = errors.New("target directory already exists")
)

// Binary wraps calls to the external git binary.
type Binary struct {
	// Path is the path to the git binary. If empty, "git" is used from PATH.
	Path string

	// Stdout for git command output. If nil, output is discarded.
	Stdout io.Writer

	// Stderr for git command errors. If nil, errors are captured for wrapping.
	Stderr io.Writer
}

// NewBinary creates a new Binary wrapper using "git" from PATH.
func NewBinary() *Binary {
	return &Binary{Path: "git"}
}

// Check verifies the git binary is available.
func (b *Binary) Check() error {
	if _, err := exec.LookPath(b.path()); err != nil {
		return fmt.Errorf("%w: install git or adjust PATH", ErrGitNotFound)
	}
	return nil
}

// Clone clones repoURL into dir with a depth-1 checkout and detaches the
// result from the template's history so the scaffold starts as a fresh
// project. dir must not exist yet.
func (b *Binary) Clone(ctx context.Context, repoURL, dir string) error {
	if err := b.Check(); err != nil {
		return err
	}

	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, dir)
	}

	if err := b.run(ctx, "", "clone", "--depth", "1", repoURL, dir); err != nil {
		return err
	}

	// The template's history is not the new mod's history.
	if err := os.RemoveAll(filepath.Join(dir, ".git")); err != nil {
		return fmt.Errorf("removing template git history: %w", err)
	}

	return nil
}

// run executes a git command in the specified directory.
func (b *Binary) run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, b.path(), args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	if b.Stdout != nil {
		cmd.Stdout = b.Stdout
	}
	if b.Stderr != nil {
		cmd.Stderr = b.Stderr
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				return fmt.Errorf("git %s failed with exit code %d",
					strings.Join(args, " "), exitErr.ExitCode())
			}
			return fmt.Errorf("git %s failed with exit code %d: %s",
				strings.Join(args, " "), exitErr.ExitCode(), msg)
		}
		return fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return nil
}

func (b *Binary) path() string {
	if b.Path != "" {
		return b.Path
	}
	return "git"
}
