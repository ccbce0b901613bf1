package cmd

import (
	"errors"

	oerrors "github.com/fabricforge/cli/internal/errors"
)

// Exit codes for the fabricforge CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid command-line input.
	ExitValidationError = 2

	// ExitNotFound indicates a descriptor or asset source was not found.
	ExitNotFound = 3

	// ExitMalformedDocument indicates the mod descriptor could not be parsed.
	ExitMalformedDocument = 4

	// ExitPatchError indicates the initializer patch anchor matched nothing.
	ExitPatchError = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitMalformedDocument:
		return "Malformed Document"
	case ExitPatchError:
		return "Patch Error"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrValidation),
		errors.Is(err, oerrors.ErrInvalidPath),
		errors.Is(err, oerrors.ErrMissingParameter):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrDocumentNotFound),
		errors.Is(err, oerrors.ErrAssetSourceNotFound):
		return ExitNotFound
	case errors.Is(err, oerrors.ErrMalformedDocument):
		return ExitMalformedDocument
	case errors.Is(err, oerrors.ErrAnchorNotFound):
		return ExitPatchError
	default:
		return ExitGeneralError
	}
}
