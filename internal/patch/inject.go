// Package patch applies idempotent, pattern-anchored text insertions to
// existing source files.
package patch

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	oerrors "github.com/fabricforge/cli/internal/errors"
)

// Outcome describes what Inject did to the target file.
type Outcome int

const (
	// Applied means the insertion was written after the anchor.
	Applied Outcome = iota

	// AlreadyApplied means the marker was found and the file was left
	// byte-for-byte untouched.
	AlreadyApplied

	// Skipped means the target file does not exist. A missing entry point is
	// an intentional skip, not an error: callers treat it as "nothing to
	// patch".
	Skipped
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case AlreadyApplied:
		return "already applied"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Inject inserts insertion immediately after the first match of anchor in the
// file at path, unless marker is already a substring of the file content.
//
// At most one insertion occurs per call even when the anchor matches several
// locations, which bounds the edit to a single predictable spot. When the
// anchor matches nothing the file is left untouched and ErrAnchorNotFound is
// returned.
//
// The write is not transactional: an interrupt mid-write can leave the file
// partially written. Callers needing atomicity must snapshot the file first.
func Inject(path, marker, anchor, insertion string) (Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Skipped, nil
		}
		return Skipped, fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	if strings.Contains(content, marker) {
		return AlreadyApplied, nil
	}

	re, err := regexp.Compile(anchor)
	if err != nil {
		return Skipped, fmt.Errorf("compiling anchor pattern: %w", err)
	}

	loc := re.FindStringIndex(content)
	if loc == nil {
		return Skipped, oerrors.NewAnchorNotFoundError(
			fmt.Sprintf("anchor pattern matched nothing in %s", path), path, anchor)
	}

	patched := content[:loc[1]] + insertion + content[loc[1]:]

	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
		return Skipped, fmt.Errorf("writing %s: %w", path, err)
	}

	return Applied, nil
}
