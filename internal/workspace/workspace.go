// Package workspace models the mod project directory the scaffold operates on
// and derives filesystem paths inside it.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/fabricforge/cli/internal/errors"
)

// Workspace is the root of a Fabric mod project. It is created by the caller
// (usually the template clone) and only ever read or written inside its root.
//
// A workspace is assumed to be privately owned by one scaffold run at a time;
// concurrent runs against the same root may interleave writes unsafely.
type Workspace struct {
	// Root is the project root directory.
	Root string
}

// New returns a workspace rooted at the given directory.
func New(root string) Workspace {
	return Workspace{Root: root}
}

// JavaSourceDir returns the Java source root, src/main/java.
func (w Workspace) JavaSourceDir() string {
	return filepath.Join(w.Root, "src", "main", "java")
}

// ResourcesDir returns the resource root, src/main/resources.
func (w Workspace) ResourcesDir() string {
	return filepath.Join(w.Root, "src", "main", "resources")
}

// DescriptorPath returns the fabric.mod.json location.
func (w Workspace) DescriptorPath() string {
	return filepath.Join(w.ResourcesDir(), "fabric.mod.json")
}

// InitializerPath returns the mod initializer the template repository ships,
// src/main/java/com/example/ExampleMod.java.
func (w Workspace) InitializerPath() string {
	return filepath.Join(w.JavaSourceDir(), "com", "example", "ExampleMod.java")
}

// AssetsDir returns the asset root for a mod id,
// src/main/resources/assets/<modID>.
func (w Workspace) AssetsDir(modID string) string {
	return filepath.Join(w.ResourcesDir(), "assets", modID)
}

// LangFilePath returns the en_us language file for a mod id.
func (w Workspace) LangFilePath(modID string) string {
	return filepath.Join(w.AssetsDir(modID), "lang", "en_us.json")
}

// PackageDir derives the source directory for a dotted Java namespace and
// creates it (and any missing parents) under the Java source root. The call
// is idempotent: an already existing directory is not an error.
func (w Workspace) PackageDir(namespace string) (string, error) {
	return DerivePackageDir(w.JavaSourceDir(), namespace)
}

// DerivePackageDir converts a dotted namespace into a nested directory under
// base, creating all intermediate directories. Each segment must be a valid
// filesystem component: non-empty and free of path separators.
func DerivePackageDir(base, namespace string) (string, error) {
	segments, err := SplitNamespace(namespace)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(append([]string{base}, segments...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating package directory %s: %w", dir, err)
	}

	return dir, nil
}

// SplitNamespace validates a dotted namespace and returns its segments.
func SplitNamespace(namespace string) ([]string, error) {
	if namespace == "" {
		return nil, oerrors.NewInvalidPathError("namespace is empty", namespace)
	}

	segments := strings.Split(namespace, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, oerrors.NewInvalidPathError("namespace contains an empty segment", namespace)
		}
		if strings.ContainsAny(seg, `/\`) || strings.ContainsRune(seg, os.PathSeparator) {
			return nil, oerrors.NewInvalidPathError(
				fmt.Sprintf("namespace segment %q contains a path separator", seg), namespace)
		}
	}

	return segments, nil
}
