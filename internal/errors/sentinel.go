package errors

import "errors"

// Sentinel errors for known scaffold failure conditions. Each maps to one
// deterministic input-validation failure; none is transient or retryable.
var (
	// ErrDocumentNotFound indicates the mod descriptor file does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrMalformedDocument indicates the mod descriptor could not be parsed.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrInvalidPath indicates a namespace segment cannot form a directory name.
	ErrInvalidPath = errors.New("invalid path")

	// ErrMissingParameter indicates a template was rendered without a required parameter.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrAnchorNotFound indicates the patch anchor pattern matched nothing.
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrAssetSourceNotFound indicates the asset source file does not exist.
	ErrAssetSourceNotFound = errors.New("asset source not found")

	// ErrValidation indicates invalid command-line input.
	ErrValidation = errors.New("validation error")
)
