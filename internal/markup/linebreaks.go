package markup

import (
	"regexp"
	"strings"
)

var (
	blankLines = regexp.MustCompile(`\n\s*\n`)

	// blockLevel matches chunks that already start with block markup and
	// must not be wrapped in a paragraph.
	blockLevel = regexp.MustCompile(`(?i)^<(p|div|h[1-6]|ul|ol|li|blockquote|pre|table|figure|section|article|iframe|hr)\b`)
)

// Linebreaks converts WordPress's newline conventions into block markup:
// paragraphs are separated by blank lines, single newlines inside a
// paragraph become <br/>. Chunks that already open with a block-level tag
// pass through untouched.
func Linebreaks(html string) (string, error) {
	html = strings.ReplaceAll(html, "\r\n", "\n")
	html = strings.ReplaceAll(html, "\r", "\n")

	var out []string
	for _, chunk := range blankLines.Split(html, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if blockLevel.MatchString(chunk) {
			out = append(out, chunk)
			continue
		}
		chunk = strings.ReplaceAll(chunk, "\n", "<br/>\n")
		out = append(out, "<p>"+chunk+"</p>")
	}

	return strings.Join(out, "\n"), nil
}
