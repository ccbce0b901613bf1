package output

import "strings"

// FileEntry represents a file in an artifact listing.
type FileEntry struct {
	// Path is the display path, including any leading indentation.
	Path string

	// Description explains the file's purpose. May be empty.
	Description string
}

// RenderFileTree renders created artifacts with descriptions aligned at the
// given column. Entries are rendered in the order supplied.
func RenderFileTree(files []FileEntry, alignColumn int) string {
	var sb strings.Builder

	for _, f := range files {
		sb.WriteString(f.Path)

		if f.Description != "" {
			padding := alignColumn - len(f.Path)
			if padding < 2 {
				padding = 2
			}
			sb.WriteString(strings.Repeat(" ", padding))
			sb.WriteString(StyleDim.Render(f.Description))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
