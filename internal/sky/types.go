// Package sky lays out text as a night sky: each paragraph becomes a
// constellation of stars, one per word, placed by walking a cursor in the
// direction of each word's part of speech. Generation is a pure function of
// the text and the tagger; nothing here keeps state between calls.
package sky

import "github.com/papapumpkin/nightsky/internal/pos"

// Size is the discrete size class of a star, derived from word length.
type Size string

// Star sizes, smallest first.
const (
	SizeTiny   Size = "tiny"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// SizeFor returns the size class for a word of n characters.
func SizeFor(n int) Size {
	switch {
	case n > 8:
		return SizeLarge
	case n > 5:
		return SizeMedium
	case n > 3:
		return SizeSmall
	default:
		return SizeTiny
	}
}

// Star is one word placed in the sky. X and Y are percentages of the
// bounding square.
type Star struct {
	X         float64      `json:"x" toml:"x" yaml:"x"`
	Y         float64      `json:"y" toml:"y" yaml:"y"`
	Size      Size         `json:"size" toml:"size" yaml:"size"`
	Roman     string       `json:"roman,omitempty" toml:"roman,omitempty" yaml:"roman,omitempty"`
	Paragraph int          `json:"paragraph" toml:"paragraph" yaml:"paragraph"`
	Color     string       `json:"color" toml:"color" yaml:"color"`
	Shape     pos.Shape    `json:"shape" toml:"shape" yaml:"shape"`
	Category  pos.Category `json:"category,omitempty" toml:"category,omitempty" yaml:"category,omitempty"`
	Word      string       `json:"word,omitempty" toml:"word,omitempty" yaml:"word,omitempty"`
}

// Connection is an edge between two stars of the same paragraph. From and To
// index Scene.Stars.
type Connection struct {
	From      int `json:"from" toml:"from" yaml:"from"`
	To        int `json:"to" toml:"to" yaml:"to"`
	Paragraph int `json:"paragraph" toml:"paragraph" yaml:"paragraph"`
}

// Area is the circle a paragraph's constellation starts from.
type Area struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Radius  float64 `json:"radius"`
}

// Scene is a complete generated sky. Star order is significant: connections
// refer to stars by index.
type Scene struct {
	Stars       []Star       `json:"stars" toml:"stars" yaml:"stars"`
	Connections []Connection `json:"connections" toml:"connections" yaml:"connections"`
	Paragraphs  []string     `json:"paragraphs" toml:"paragraphs" yaml:"paragraphs"`
}

// StarsOf returns the indices into s.Stars of paragraph p's stars.
func (s Scene) StarsOf(p int) []int {
	var idx []int
	for i, st := range s.Stars {
		if st.Paragraph == p {
			idx = append(idx, i)
		}
	}
	return idx
}
