package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	t.Run("renders entries in order", func(t *testing.T) {
		entries := []FileEntry{
			{Path: "my-fabric-mod/", Description: "Project directory"},
			{Path: "  fabric.mod.json", Description: "Mod descriptor"},
			{Path: "  TutorialItems.java", Description: "Item registry"},
		}

		result := RenderFileTree(entries, 30)

		assert.Contains(t, result, "my-fabric-mod/")
		assert.Contains(t, result, "fabric.mod.json")
		assert.Contains(t, result, "TutorialItems.java")

		// Order is preserved
		assert.Less(t,
			strings.Index(result, "fabric.mod.json"),
			strings.Index(result, "TutorialItems.java"))
	})

	t.Run("aligns descriptions at the requested column", func(t *testing.T) {
		entries := []FileEntry{
			{Path: "a", Description: "short path"},
		}

		result := RenderFileTree(entries, 10)

		// "a" plus 9 spaces of padding before the description
		assert.Contains(t, result, "a         ")
	})

	t.Run("keeps minimum two-space gap for long paths", func(t *testing.T) {
		entries := []FileEntry{
			{Path: "a/very/long/path/that/exceeds/the/column", Description: "desc"},
		}

		result := RenderFileTree(entries, 10)
		assert.Contains(t, result, "column  ")
	})

	t.Run("omits padding without description", func(t *testing.T) {
		entries := []FileEntry{{Path: "plain.txt"}}

		result := RenderFileTree(entries, 30)
		assert.Equal(t, "plain.txt\n", result)
	})
}

func TestFormatStepLine(t *testing.T) {
	line := FormatStepLine("metadata merge", StatusCompleted)

	assert.Contains(t, line, "metadata merge")
	assert.Contains(t, line, StatusCompleted)
}
