package templates

import (
	"bytes"
	"fmt"
	"text/template"

	oerrors "github.com/fabricforge/cli/internal/errors"
)

// Render fills the named template with the given parameters and returns the
// rendered content. Rendering is pure: the same inputs always produce
// byte-identical output, and nothing is written to disk here — writing is the
// orchestrator's responsibility.
//
// Every required parameter must be non-empty; a missing one fails fast with
// ErrMissingParameter instead of emitting a skeleton with holes.
func Render(name string, params Params) ([]byte, error) {
	spec, err := Get(name)
	if err != nil {
		return nil, err
	}

	if err := checkRequired(spec, params); err != nil {
		return nil, err
	}

	content, err := skeletonFS.ReadFile(spec.Source)
	if err != nil {
		return nil, fmt.Errorf("reading skeleton %s: %w", spec.Source, err)
	}

	tmpl, err := template.New(spec.Name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", spec.Name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", spec.Name, err)
	}

	return buf.Bytes(), nil
}

// checkRequired verifies that every parameter the spec names is supplied.
func checkRequired(spec Spec, params Params) error {
	for _, field := range spec.Required {
		if paramValue(params, field) == "" {
			return oerrors.NewMissingParameterError(spec.Name, field)
		}
	}
	return nil
}

func paramValue(params Params, field string) string {
	switch field {
	case "Package":
		return params.Package
	case "ModID":
		return params.ModID
	case "ArtifactName":
		return params.ArtifactName
	default:
		return ""
	}
}
