package sky

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a scene file encoding.
type Format string

// Supported scene formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode writes scene to w in format f.
func Encode(w io.Writer, scene Scene, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(scene); err != nil {
			return fmt.Errorf("encoding scene as json: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(scene); err != nil {
			return fmt.Errorf("encoding scene as toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(scene); err != nil {
			return fmt.Errorf("encoding scene as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding scene as yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return nil
}

// Decode reads a scene in format f from r and checks that every connection
// refers to stars of its own paragraph.
func Decode(r io.Reader, f Format) (Scene, error) {
	var scene Scene
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&scene); err != nil {
			return Scene{}, fmt.Errorf("decoding json scene: %w", err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(r).Decode(&scene); err != nil {
			return Scene{}, fmt.Errorf("decoding toml scene: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&scene); err != nil {
			return Scene{}, fmt.Errorf("decoding yaml scene: %w", err)
		}
	default:
		return Scene{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err := scene.Validate(); err != nil {
		return Scene{}, err
	}
	return scene, nil
}

// Validate checks the scene's structural invariants: connection indices are
// in range and both ends belong to the connection's paragraph.
func (s Scene) Validate() error {
	for i, c := range s.Connections {
		if c.From < 0 || c.From >= len(s.Stars) || c.To < 0 || c.To >= len(s.Stars) {
			return fmt.Errorf("connection %d (%d->%d) out of range for %d stars", i, c.From, c.To, len(s.Stars))
		}
		if s.Stars[c.From].Paragraph != c.Paragraph || s.Stars[c.To].Paragraph != c.Paragraph {
			return fmt.Errorf("connection %d crosses paragraphs", i)
		}
	}
	return nil
}
