// Package render assembles the final Markdown document from a walk report.
package render

import (
	"strings"

	"github.com/tilsley/repolens/apps/analyzer/internal/traverse"
)

// Document renders tree lines and file contents as one Markdown document:
// the fenced ASCII tree under "# Repository Structure", then every file's
// text under its own "## path" heading, in walk order. File bodies are
// embedded verbatim; fences inside them are not escaped.
func Document(lines []string, contents *traverse.ContentIndex) string {
	var b strings.Builder
	b.WriteString("# Repository Structure\n\n")
	b.WriteString("```\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n```\n\n")
	b.WriteString("# File Contents\n\n")
	for _, path := range contents.Paths() {
		res, _ := contents.Get(path)
		b.WriteString("## " + path + "\n\n")
		b.WriteString("```\n")
		b.WriteString(res.Text)
		b.WriteString("\n```\n\n")
	}
	return b.String()
}
