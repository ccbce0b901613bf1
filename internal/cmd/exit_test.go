package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/fabricforge/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "generic", err: errors.New("boom"), want: ExitGeneralError},
		{name: "validation", err: oerrors.Wrap(oerrors.ErrValidation, "bad flag"), want: ExitValidationError},
		{name: "invalid path", err: oerrors.Wrap(oerrors.ErrInvalidPath, "bad namespace"), want: ExitValidationError},
		{name: "missing parameter", err: oerrors.Wrap(oerrors.ErrMissingParameter, "no package"), want: ExitValidationError},
		{name: "document not found", err: oerrors.Wrap(oerrors.ErrDocumentNotFound, "no descriptor"), want: ExitNotFound},
		{name: "asset source not found", err: oerrors.Wrap(oerrors.ErrAssetSourceNotFound, "no texture"), want: ExitNotFound},
		{name: "malformed document", err: oerrors.Wrap(oerrors.ErrMalformedDocument, "bad json"), want: ExitMalformedDocument},
		{name: "anchor not found", err: oerrors.Wrap(oerrors.ErrAnchorNotFound, "no method"), want: ExitPatchError},
		{name: "explicit exit error wins", err: oerrors.NewExitError(errors.New("boom"), ExitPatchError), want: ExitPatchError},
		{name: "wrapped sentinel", err: fmt.Errorf("outer: %w", oerrors.Wrap(oerrors.ErrAnchorNotFound, "inner")), want: ExitPatchError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "General Error", ExitCodeName(ExitGeneralError))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Malformed Document", ExitCodeName(ExitMalformedDocument))
	assert.Equal(t, "Patch Error", ExitCodeName(ExitPatchError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
