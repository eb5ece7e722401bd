package ingest

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize composes text to NFC, so "é" typed as e plus a combining accent
// is one character, and converts CRLF and CR line endings to LF. A leading
// byte order mark is dropped.
func Normalize(text string) string {
	text = strings.TrimPrefix(text, "\uFEFF")
	return norm.NFC.String(lineEndings.Replace(text))
}
