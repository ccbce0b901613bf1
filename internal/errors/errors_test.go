//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrDocumentNotFound, ErrMalformedDocument)
	assert.NotEqual(t, ErrInvalidPath, ErrMissingParameter)
	assert.NotEqual(t, ErrAnchorNotFound, ErrAssetSourceNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "malformed document",
		Message:  "unexpected end of JSON input",
		Location: "/mod/src/main/resources/fabric.mod.json",
		Context:  map[string]string{"parse error": "unexpected EOF"},
		Hint:     "Fix the JSON syntax by hand",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: malformed document")
	assert.Contains(t, output, "Location: /mod/src/main/resources/fabric.mod.json")
	assert.Contains(t, output, "parse error: unexpected EOF")
	assert.Contains(t, output, "unexpected end of JSON input")
	assert.Contains(t, output, "Hint: Fix the JSON syntax by hand")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrAnchorNotFound,
	}

	assert.True(t, errors.Is(detail, ErrAnchorNotFound))
	assert.Equal(t, ErrAnchorNotFound, detail.Unwrap())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		wantType string
	}{
		{
			name:     "document not found",
			err:      NewDocumentNotFoundError("fabric.mod.json is missing", "/mod/fabric.mod.json"),
			sentinel: ErrDocumentNotFound,
			wantType: "document not found",
		},
		{
			name:     "malformed document",
			err:      NewMalformedDocumentError("cannot parse descriptor", "/mod/fabric.mod.json", errors.New("bad token")),
			sentinel: ErrMalformedDocument,
			wantType: "malformed document",
		},
		{
			name:     "invalid path",
			err:      NewInvalidPathError("empty namespace segment", "a..c"),
			sentinel: ErrInvalidPath,
			wantType: "invalid path",
		},
		{
			name:     "missing parameter",
			err:      NewMissingParameterError("item-registry", "ModID"),
			sentinel: ErrMissingParameter,
			wantType: "missing parameter",
		},
		{
			name:     "anchor not found",
			err:      NewAnchorNotFoundError("no onInitialize method", "/mod/ExampleMod.java", `onInitialize\s*\(`),
			sentinel: ErrAnchorNotFound,
			wantType: "anchor not found",
		},
		{
			name:     "asset source not found",
			err:      NewAssetSourceNotFoundError("/textures/missing.png"),
			sentinel: ErrAssetSourceNotFound,
			wantType: "asset source not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.err)
			assert.True(t, errors.Is(tt.err, tt.sentinel))

			var detail *DetailError
			require.True(t, errors.As(tt.err, &detail))
			assert.Equal(t, tt.wantType, detail.Type)
			assert.NotEmpty(t, detail.Message)
		})
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidPath, "deriving package directory")

	assert.True(t, errors.Is(wrapped, ErrInvalidPath))
	assert.Contains(t, wrapped.Error(), "deriving package directory")
}

func TestExitError(t *testing.T) {
	inner := errors.New("scaffold failed")
	exitErr := NewExitError(inner, 2)

	assert.Equal(t, "scaffold failed", exitErr.Error())
	assert.Equal(t, 2, exitErr.Code)
	assert.Equal(t, inner, exitErr.Unwrap())
	assert.False(t, exitErr.Printed)
}
