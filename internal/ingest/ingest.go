// Package ingest turns files, globs, and HTML pages into the plain text the
// sky engine lays out, and watches a source file for edits.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrNoInput is returned when no patterns are given.
	ErrNoInput = errors.New("ingest: no input")
	// ErrNoMatches is returned when a pattern matches no files.
	ErrNoMatches = errors.New("ingest: pattern matched no files")
)

// Source is one input document.
type Source struct {
	Path  string
	Title string
	Text  string
}

// ReadSources expands each pattern (plain paths or doublestar globs such as
// "poems/**/*.txt") and reads the matches in pattern order, each pattern's
// matches sorted by path. A file matched twice is read once. HTML files are
// converted to text; every text is normalized.
func ReadSources(patterns []string) ([]Source, error) {
	if len(patterns) == 0 {
		return nil, ErrNoInput
	}
	seen := make(map[string]bool)
	var out []Source
	for _, pattern := range patterns {
		paths, err := expand(pattern)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			if seen[p] {
				continue
			}
			seen[p] = true
			src, err := ReadFile(p)
			if err != nil {
				return nil, err
			}
			out = append(out, src)
		}
	}
	return out, nil
}

func expand(pattern string) ([]string, error) {
	if info, err := os.Stat(pattern); err == nil && !info.IsDir() {
		return []string{filepath.Clean(pattern)}, nil
	}
	if !doublestar.ValidatePathPattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("ingest: bad pattern %q", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("ingest: glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
	}
	slices.Sort(matches)
	return matches, nil
}

// ReadFile reads one source file.
func ReadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("ingest: read %s: %w", path, err)
	}
	if IsHTML(path) {
		page, err := FromHTML(string(data))
		if err != nil {
			return Source{}, fmt.Errorf("ingest: convert %s: %w", path, err)
		}
		return Source{Path: path, Title: page.Title, Text: page.Text}, nil
	}
	return Source{Path: path, Text: Normalize(string(data))}, nil
}

// IsHTML reports whether path names an HTML document.
func IsHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// Join concatenates sources into one text, one or more paragraphs each.
func Join(sources []Source) string {
	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}
