package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	oerrors "github.com/fabricforge/cli/internal/errors"
	"github.com/fabricforge/cli/internal/gitrepo"
	"github.com/fabricforge/cli/internal/metadata"
	"github.com/fabricforge/cli/internal/output"
	"github.com/fabricforge/cli/internal/scaffold"
	"github.com/fabricforge/cli/internal/templates"
	"github.com/fabricforge/cli/internal/workspace"
)

var (
	initDir         string
	initName        string
	initModVersion  string
	initDescription string
	initAuthor      string
	initNamespace   string
	initKind        string
	initTexture     string
	initRepo        string
	initSkipClone   bool
)

// modIDPattern matches valid Fabric mod identifiers.
var modIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// cloneTimeout bounds the template clone; slow mirrors happen, hangs don't help.
const cloneTimeout = 5 * time.Minute

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <mod-id>",
		Short: "Create a new Fabric mod project",
		Long: `Create a new Fabric mod project from the example-mod template.

Clones the template repository, merges your mod's identity into
fabric.mod.json, generates the registry and behavior sources, wires the
registry into the mod initializer, and adds language entries. With
--texture, the texture is published together with its model and item
definition descriptors.

Examples:
  # Create an item mod in ./mycustommod
  fabricforge init mycustommod

  # Create a block mod with an explicit texture
  fabricforge init stonemod --kind block --texture ./stone.png

  # Scaffold into an existing checkout without cloning
  fabricforge init mycustommod --dir ./mycustommod --skip-clone`,
		Args: cobra.ExactArgs(1),
		RunE: runInit,
	}

	cmd.Flags().StringVarP(&initDir, "dir", "d", "",
		"Directory to create the project in (defaults to the mod id)")
	cmd.Flags().StringVar(&initName, "name", "",
		"Display name of the mod (defaults to the mod id)")
	cmd.Flags().StringVar(&initModVersion, "mod-version", "1.0.0",
		"Version written to fabric.mod.json")
	cmd.Flags().StringVar(&initDescription, "description", "",
		"Description written to fabric.mod.json")
	cmd.Flags().StringVar(&initAuthor, "author", "",
		"Author written to fabric.mod.json (defaults from config)")
	cmd.Flags().StringVar(&initNamespace, "namespace", "",
		"Java package for generated sources (defaults to com.example.<mod-id>.<kind>s)")
	cmd.Flags().StringVarP(&initKind, "kind", "k", "",
		fmt.Sprintf("Scaffold kind (%s; defaults from config)", strings.Join(templates.ValidKinds(), ", ")))
	cmd.Flags().StringVar(&initTexture, "texture", "",
		"Texture file to publish with model and definition descriptors")
	cmd.Flags().StringVar(&initRepo, "repo", "",
		"Template repository URL (defaults from config)")
	cmd.Flags().BoolVar(&initSkipClone, "skip-clone", false,
		"Scaffold an existing checkout instead of cloning the template")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	modID := args[0]
	cfg := GetConfig()

	if !modIDPattern.MatchString(modID) {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("invalid mod id: %s", modID),
			Hint:    "Mod ids start with a letter and contain only lowercase letters, digits, '_' and '-'.",
			Cause:   oerrors.ErrValidation,
		}
	}

	kindName := initKind
	if kindName == "" {
		kindName = cfg.Defaults.Kind
	}
	if !templates.IsValidKind(kindName) {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown kind: %s", kindName),
			Hint:    fmt.Sprintf("Valid kinds: %s", strings.Join(templates.ValidKinds(), ", ")),
			Cause:   oerrors.ErrValidation,
		}
	}
	kind := templates.Kind(kindName)

	targetDir := initDir
	if targetDir == "" {
		targetDir = modID
	}

	if err := ensureCheckout(cmd, cfg.Template.Repo, targetDir); err != nil {
		return err
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("getting absolute path: %w", err)
	}

	namespace := initNamespace
	if namespace == "" {
		namespace = scaffold.DefaultNamespace(modID, kind)
	}

	author := initAuthor
	if author == "" {
		author = cfg.Defaults.Author
	}

	displayName := initName
	if displayName == "" {
		displayName = modID
	}

	overlay := metadata.Overlay{
		{Key: "id", Value: modID},
		{Key: "version", Value: initModVersion},
		{Key: "name", Value: displayName},
	}
	if initDescription != "" {
		overlay = append(overlay, metadata.Field{Key: "description", Value: initDescription})
	}
	if author != "" {
		overlay = append(overlay, metadata.Field{Key: "authors", Value: []string{author}})
	}

	report := scaffold.Run(scaffold.Options{
		Workspace:   workspace.New(targetDir),
		ModID:       modID,
		Namespace:   namespace,
		Kind:        kind,
		Metadata:    overlay,
		TexturePath: initTexture,
	})

	for _, step := range report.Steps {
		output.Println(output.FormatStepLine(step.Name, string(step.Status)))
	}
	output.Println("")

	if err := report.Err(); err != nil {
		output.Error("scaffold finished with failed steps", "error", err)
		return oerrors.NewExitError(err, ExitCodeFromError(err))
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created mod '%s' in %s\n", modID, absDir)))

	entries := make([]output.FileEntry, 0, len(report.Steps))
	for _, file := range report.Artifacts() {
		rel, relErr := filepath.Rel(targetDir, file)
		if relErr != nil {
			rel = file
		}
		entries = append(entries, output.FileEntry{
			Path:        "  " + rel,
			Description: artifactDescription(rel),
		})
	}
	output.Print(output.RenderFileTree(entries, 56))

	return nil
}

// ensureCheckout makes sure targetDir holds a mod checkout: either it clones
// the template repository, or, with --skip-clone, verifies the directory
// already exists.
func ensureCheckout(cmd *cobra.Command, defaultRepo, targetDir string) error {
	if initSkipClone {
		if _, err := os.Stat(targetDir); err != nil {
			return &oerrors.DetailError{
				Type:     "validation failed",
				Message:  fmt.Sprintf("directory does not exist: %s", targetDir),
				Location: targetDir,
				Hint:     "Drop --skip-clone to clone the template, or point --dir at an existing checkout.",
				Cause:    oerrors.ErrValidation,
			}
		}
		return nil
	}

	if _, err := os.Stat(targetDir); err == nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("directory already exists: %s", targetDir),
			Location: targetDir,
			Hint:     "Choose a different directory, or use --skip-clone to scaffold in place.",
			Cause:    oerrors.ErrValidation,
		}
	}

	repo := initRepo
	if repo == "" {
		repo = defaultRepo
	}

	git := gitrepo.NewBinary()
	err := output.RunWithSpinner(cmd.Context(), func() error {
		return git.Clone(cmd.Context(), repo, targetDir)
	}, output.WithTitle("Cloning "+repo), output.WithTimeout(cloneTimeout))
	if err != nil {
		return fmt.Errorf("cloning template repository: %w", err)
	}

	output.Debug("template cloned", "repo", repo, "dir", targetDir)
	return nil
}

// artifactDescription explains known artifact paths in the created-files
// listing. Unknown paths get no description.
func artifactDescription(rel string) string {
	base := filepath.Base(rel)
	switch {
	case base == "fabric.mod.json":
		return "Mod descriptor"
	case base == "en_us.json":
		return "Language entries"
	case strings.HasSuffix(base, "Items.java") || strings.HasSuffix(base, "Blocks.java"):
		return "Registry class"
	case base == "CustomItem.java" || base == "CustomBlock.java":
		return "Behavior class"
	case base == "ExampleMod.java":
		return "Mod initializer"
	case strings.HasSuffix(base, ".png"):
		return "Texture"
	case strings.Contains(rel, string(filepath.Separator)+"models"+string(filepath.Separator)):
		return "Model descriptor"
	case strings.Contains(rel, string(filepath.Separator)+"blockstates"+string(filepath.Separator)):
		return "Blockstate descriptor"
	case strings.Contains(rel, string(filepath.Separator)+"items"+string(filepath.Separator)):
		return "Item definition"
	default:
		return ""
	}
}
