// Package templates provides the fixed set of Java source templates the
// scaffold renders into a mod project.
package templates

import (
	"embed"
	"fmt"
)

//go:embed skeletons/*.tmpl
var skeletonFS embed.FS

// Kind selects which scaffold variant a template set belongs to.
type Kind string

const (
	// KindItem scaffolds a custom item with its registry helper.
	KindItem Kind = "item"

	// KindBlock scaffolds a custom block with its registry helper and BlockItem.
	KindBlock Kind = "block"
)

// ValidKinds returns all valid scaffold kinds.
func ValidKinds() []string {
	return []string{string(KindItem), string(KindBlock)}
}

// IsValidKind checks if a kind name is valid.
func IsValidKind(name string) bool {
	switch Kind(name) {
	case KindItem, KindBlock:
		return true
	default:
		return false
	}
}

// Params holds the substitution parameters for template rendering.
type Params struct {
	// Package is the dotted Java namespace the file is generated into.
	Package string

	// ModID is the mod identifier used for registry keys.
	ModID string

	// ArtifactName is the registry path of the generated item or block,
	// e.g. "custom_item".
	ArtifactName string
}

// Spec is a named template with its skeleton file, output file name, and the
// parameters it requires. Specs are defined by the tool, not by callers.
type Spec struct {
	// Name is the template identifier.
	Name string

	// Source is the skeleton path inside the embedded filesystem.
	Source string

	// OutputFile is the fixed file name the rendered content is written as.
	OutputFile string

	// Required lists the Params fields that must be non-empty.
	Required []string
}

// registry is the internal registry of available templates.
var registry = map[string]Spec{
	"item-registry": {
		Name:       "item-registry",
		Source:     "skeletons/item_registry.java.tmpl",
		OutputFile: "TutorialItems.java",
		Required:   []string{"Package", "ModID", "ArtifactName"},
	},
	"item-behavior": {
		Name:       "item-behavior",
		Source:     "skeletons/item_behavior.java.tmpl",
		OutputFile: "CustomItem.java",
		Required:   []string{"Package"},
	},
	"block-registry": {
		Name:       "block-registry",
		Source:     "skeletons/block_registry.java.tmpl",
		OutputFile: "TutorialBlocks.java",
		Required:   []string{"Package", "ModID", "ArtifactName"},
	},
	"block-behavior": {
		Name:       "block-behavior",
		Source:     "skeletons/block_behavior.java.tmpl",
		OutputFile: "CustomBlock.java",
		Required:   []string{"Package"},
	},
}

// Get returns a template spec by name.
func Get(name string) (Spec, error) {
	s, ok := registry[name]
	if !ok {
		return Spec{}, fmt.Errorf("unknown template %q; valid templates: item-registry, item-behavior, block-registry, block-behavior", name)
	}
	return s, nil
}

// Names returns all template names.
func Names() []string {
	return []string{"item-registry", "item-behavior", "block-registry", "block-behavior"}
}

// ForKind returns the registry and behavior specs for a scaffold kind, in the
// order they should be written.
func ForKind(kind Kind) ([]Spec, error) {
	switch kind {
	case KindItem:
		return []Spec{registry["item-registry"], registry["item-behavior"]}, nil
	case KindBlock:
		return []Spec{registry["block-registry"], registry["block-behavior"]}, nil
	default:
		return nil, fmt.Errorf("unknown scaffold kind %q; valid kinds: item, block", kind)
	}
}

// RegistryClass returns the generated registry class name for a kind. The
// initializer patch references it as <package>.<class>.initialize().
func RegistryClass(kind Kind) string {
	if kind == KindBlock {
		return "TutorialBlocks"
	}
	return "TutorialItems"
}

// DefaultArtifactName returns the fixed artifact name for a kind,
// e.g. "custom_item".
func DefaultArtifactName(kind Kind) string {
	if kind == KindBlock {
		return "custom_block"
	}
	return "custom_item"
}
