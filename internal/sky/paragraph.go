package sky

import "strings"

// SplitParagraphs splits text on blank lines and returns the trimmed,
// non-empty paragraphs in order. Windows line endings are normalized first.
func SplitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
