// Package metadata merges caller-supplied fields into the mod descriptor
// (fabric.mod.json) without disturbing unrelated content.
package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	oerrors "github.com/fabricforge/cli/internal/errors"
)

// Field is one overlay entry. Values may be scalars or arrays; arrays replace
// the existing value wholesale, they are never concatenated.
type Field struct {
	Key   string
	Value any
}

// Overlay is an ordered set of fields to lay over an existing document.
// Order matters only for keys the document does not already contain: those
// are appended in overlay order.
type Overlay []Field

// Document is a JSON object with its original key order intact. Values are
// kept as raw bytes so untouched entries survive the round trip verbatim
// (modulo re-indentation).
type Document = orderedmap.OrderedMap[string, json.RawMessage]

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewDocumentNotFoundError(
				fmt.Sprintf("mod descriptor does not exist: %s", path), path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, oerrors.NewMalformedDocumentError(
			fmt.Sprintf("cannot parse %s as a JSON object", filepath.Base(path)), path, err)
	}

	return doc, nil
}

// Merge loads the document at path, applies the overlay as a shallow key
// replacement, and writes the result back with stable 2-space formatting.
//
// Keys already present keep their position; new keys are appended at the end.
// Keys absent from the overlay are untouched, so re-running the same merge is
// a no-op on the file content.
func Merge(path string, overlay Overlay) error {
	doc, err := Load(path)
	if err != nil {
		return err
	}

	if err := Apply(doc, overlay); err != nil {
		return err
	}

	return save(path, doc)
}

// MergeOrCreate behaves like Merge but starts from an empty document when the
// file does not exist. Used only for tool-owned documents such as the
// language file, never for the mod descriptor.
func MergeOrCreate(path string, overlay Overlay) error {
	doc, err := Load(path)
	if err != nil {
		if !isNotFound(err) {
			return err
		}
		doc = orderedmap.New[string, json.RawMessage]()
	}

	if err := Apply(doc, overlay); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	return save(path, doc)
}

// Apply lays the overlay over the document in place.
func Apply(doc *Document, overlay Overlay) error {
	for _, f := range overlay {
		raw, err := json.Marshal(f.Value)
		if err != nil {
			return fmt.Errorf("encoding overlay value for %q: %w", f.Key, err)
		}
		doc.Set(f.Key, json.RawMessage(raw))
	}
	return nil
}

// save serializes the document with fixed formatting: 2-space indentation,
// UTF-8, trailing newline.
func save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, oerrors.ErrDocumentNotFound)
}
