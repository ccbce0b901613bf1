// Package errors provides sentinel errors and structured error details for
// the fabricforge CLI.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewDocumentNotFoundError creates a document-not-found error with details.
func NewDocumentNotFoundError(message, location string) error {
	return &DetailError{
		Type:     "document not found",
		Message:  message,
		Location: location,
		Hint:     "Run the template clone first, or point --dir at an existing mod project.",
		Cause:    ErrDocumentNotFound,
	}
}

// NewMalformedDocumentError creates a malformed-document error with details.
func NewMalformedDocumentError(message, location string, cause error) error {
	return &DetailError{
		Type:     "malformed document",
		Message:  message,
		Location: location,
		Context:  map[string]string{"parse error": cause.Error()},
		Hint:     "Fix the JSON syntax by hand; the merge never rewrites a file it cannot parse.",
		Cause:    ErrMalformedDocument,
	}
}

// NewInvalidPathError creates an invalid-path error for a namespace segment.
func NewInvalidPathError(message, namespace string) error {
	return &DetailError{
		Type:    "invalid path",
		Message: message,
		Context: map[string]string{"namespace": namespace},
		Hint:    "Namespace segments must be non-empty and free of path separators, e.g. com.example.mymod.items.",
		Cause:   ErrInvalidPath,
	}
}

// NewMissingParameterError creates a missing-parameter error for a template.
func NewMissingParameterError(template, parameter string) error {
	return &DetailError{
		Type:    "missing parameter",
		Message: fmt.Sprintf("template %q requires parameter %q", template, parameter),
		Cause:   ErrMissingParameter,
	}
}

// NewAnchorNotFoundError creates an anchor-not-found error with details.
func NewAnchorNotFoundError(message, location, anchor string) error {
	return &DetailError{
		Type:     "anchor not found",
		Message:  message,
		Location: location,
		Context:  map[string]string{"anchor": anchor},
		Hint:     "The initializer file was left untouched. Check that it still declares the method the patch anchors on.",
		Cause:    ErrAnchorNotFound,
	}
}

// NewAssetSourceNotFoundError creates an asset-source-not-found error.
func NewAssetSourceNotFoundError(location string) error {
	return &DetailError{
		Type:     "asset source not found",
		Message:  fmt.Sprintf("texture file does not exist: %s", location),
		Location: location,
		Cause:    ErrAssetSourceNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed records whether the command layer already printed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}
