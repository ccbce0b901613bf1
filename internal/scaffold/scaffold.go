// Package scaffold sequences the structural edits that turn a fresh template
// checkout into a named mod project.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fabricforge/cli/internal/assets"
	"github.com/fabricforge/cli/internal/metadata"
	"github.com/fabricforge/cli/internal/output"
	"github.com/fabricforge/cli/internal/patch"
	"github.com/fabricforge/cli/internal/templates"
	"github.com/fabricforge/cli/internal/workspace"
)

// initializerAnchor matches the opening brace of the zero-argument
// onInitialize method in the template's mod initializer.
const initializerAnchor = `(public\s+void\s+onInitialize\s*\(\s*\)\s*\{)`

// Options configures one scaffold run.
type Options struct {
	// Workspace is the mod project root, owned by the caller.
	Workspace workspace.Workspace

	// ModID is the mod identifier, e.g. "mycustommod".
	ModID string

	// Namespace is the dotted Java package the sources are generated into.
	Namespace string

	// Kind selects the item or block scaffold variant.
	Kind templates.Kind

	// Metadata is laid over fabric.mod.json.
	Metadata metadata.Overlay

	// DisplayName is the in-game name written to the language file.
	// Defaults to a name derived from the artifact.
	DisplayName string

	// TexturePath optionally points at a texture to publish. Empty skips the
	// asset step.
	TexturePath string
}

// Step names, in execution order.
const (
	StepMetadata    = "metadata merge"
	StepSources     = "source generation"
	StepInitializer = "initializer patch"
	StepLang        = "language entries"
	StepAssets      = "asset publish"
)

// StepStatus describes how a step ended.
type StepStatus string

const (
	StatusCompleted      StepStatus = "completed"
	StatusSkipped        StepStatus = "skipped"
	StatusAlreadyApplied StepStatus = "already applied"
	StatusFailed         StepStatus = "failed"
)

// StepResult reports one step of the scaffold sequence.
type StepResult struct {
	// Name is the step name.
	Name string

	// Status is the step outcome.
	Status StepStatus

	// Err is set when Status is StatusFailed.
	Err error

	// Artifacts lists files the step created or modified.
	Artifacts []string
}

// Report collects the results of a scaffold run. Steps are independent: a
// failure is recorded and the sequence continues, so earlier artifacts are
// never rolled back and the caller can see exactly which files exist.
type Report struct {
	Steps []StepResult
}

// Err returns the joined errors of all failed steps, or nil.
func (r *Report) Err() error {
	var errs []error
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, s.Err))
		}
	}
	return errors.Join(errs...)
}

// Artifacts returns every file the run created or modified, in step order.
func (r *Report) Artifacts() []string {
	var files []string
	for _, s := range r.Steps {
		files = append(files, s.Artifacts...)
	}
	return files
}

// DefaultNamespace derives the Java package for a mod id and kind,
// e.g. "com.example.mycustommod.items".
func DefaultNamespace(modID string, kind templates.Kind) string {
	suffix := "items"
	if kind == templates.KindBlock {
		suffix = "blocks"
	}
	return fmt.Sprintf("com.example.%s.%s", modID, suffix)
}

// Run executes the scaffold sequence: metadata merge, source generation,
// initializer patch, language entries, and the optional asset publish.
//
// The sequence is linear and single-invocation; no step reads another's
// output at runtime, and concurrent runs against the same workspace are
// unsupported. Re-running is safe: the merge and patch are idempotent, while
// generated sources and descriptors are deterministically rewritten.
func Run(opts Options) *Report {
	report := &Report{}

	report.record(runMetadata(opts))
	report.record(runSources(opts))
	report.record(runInitializer(opts))
	report.record(runLang(opts))
	report.record(runAssets(opts))

	return report
}

func (r *Report) record(s StepResult) {
	output.Debug("scaffold step finished", "step", s.Name, "status", string(s.Status))
	r.Steps = append(r.Steps, s)
}

func runMetadata(opts Options) StepResult {
	path := opts.Workspace.DescriptorPath()
	if err := metadata.Merge(path, opts.Metadata); err != nil {
		return StepResult{Name: StepMetadata, Status: StatusFailed, Err: err}
	}
	return StepResult{Name: StepMetadata, Status: StatusCompleted, Artifacts: []string{path}}
}

func runSources(opts Options) StepResult {
	dir, err := opts.Workspace.PackageDir(opts.Namespace)
	if err != nil {
		return StepResult{Name: StepSources, Status: StatusFailed, Err: err}
	}

	specs, err := templates.ForKind(opts.Kind)
	if err != nil {
		return StepResult{Name: StepSources, Status: StatusFailed, Err: err}
	}

	params := templates.Params{
		Package:      opts.Namespace,
		ModID:        opts.ModID,
		ArtifactName: templates.DefaultArtifactName(opts.Kind),
	}

	var written []string
	for _, spec := range specs {
		content, err := templates.Render(spec.Name, params)
		if err != nil {
			return StepResult{Name: StepSources, Status: StatusFailed, Err: err, Artifacts: written}
		}

		// Overwrite semantics: rendering is deterministic, so a re-run
		// rewrites identical content.
		path := filepath.Join(dir, spec.OutputFile)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return StepResult{Name: StepSources, Status: StatusFailed, Err: err, Artifacts: written}
		}
		written = append(written, path)
	}

	return StepResult{Name: StepSources, Status: StatusCompleted, Artifacts: written}
}

func runInitializer(opts Options) StepResult {
	class := templates.RegistryClass(opts.Kind)
	marker := class + ".initialize()"
	insertion := fmt.Sprintf("\n    %s.%s.initialize();", opts.Namespace, class)
	path := opts.Workspace.InitializerPath()

	outcome, err := patch.Inject(path, marker, initializerAnchor, insertion)
	if err != nil {
		return StepResult{Name: StepInitializer, Status: StatusFailed, Err: err}
	}

	switch outcome {
	case patch.AlreadyApplied:
		return StepResult{Name: StepInitializer, Status: StatusAlreadyApplied}
	case patch.Skipped:
		return StepResult{Name: StepInitializer, Status: StatusSkipped}
	default:
		return StepResult{Name: StepInitializer, Status: StatusCompleted, Artifacts: []string{path}}
	}
}

func runLang(opts Options) StepResult {
	artifact := templates.DefaultArtifactName(opts.Kind)

	name := opts.DisplayName
	if name == "" {
		name = displayName(artifact)
	}

	key := fmt.Sprintf("%s.%s.%s", langCategory(opts.Kind), opts.ModID, artifact)
	path := opts.Workspace.LangFilePath(opts.ModID)

	if err := metadata.MergeOrCreate(path, metadata.Overlay{{Key: key, Value: name}}); err != nil {
		return StepResult{Name: StepLang, Status: StatusFailed, Err: err}
	}

	return StepResult{Name: StepLang, Status: StatusCompleted, Artifacts: []string{path}}
}

func runAssets(opts Options) StepResult {
	if opts.TexturePath == "" {
		return StepResult{Name: StepAssets, Status: StatusSkipped}
	}

	artifact := templates.DefaultArtifactName(opts.Kind)

	var result *assets.Result
	var err error
	if opts.Kind == templates.KindBlock {
		result, err = assets.PublishBlock(opts.Workspace, opts.ModID, artifact, opts.TexturePath)
	} else {
		result, err = assets.PublishItem(opts.Workspace, opts.ModID, artifact, opts.TexturePath)
	}
	if err != nil {
		return StepResult{Name: StepAssets, Status: StatusFailed, Err: err}
	}

	files := append([]string{result.Texture}, result.Descriptors...)
	return StepResult{Name: StepAssets, Status: StatusCompleted, Artifacts: files}
}

func langCategory(kind templates.Kind) string {
	if kind == templates.KindBlock {
		return "block"
	}
	return "item"
}

// displayName turns an artifact name like "custom_item" into "Custom Item".
func displayName(artifact string) string {
	words := strings.Split(artifact, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
