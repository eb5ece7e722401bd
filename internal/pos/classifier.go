package pos

import "strings"

// Word is a classified word occurrence.
type Word struct {
	Text     string
	Category Category
	Rule     string
}

// Classifier tags whole texts and classifies every word in them.
type Classifier struct {
	tagger Tagger
}

// NewClassifier returns a Classifier backed by tagger.
func NewClassifier(tagger Tagger) *Classifier {
	return &Classifier{tagger: tagger}
}

// ClassifyText tags text and classifies each word in order. Terms that are
// blank or pure punctuation are skipped.
func (c *Classifier) ClassifyText(text string) []Word {
	terms := c.tagger.Tag(text)
	words := make([]Word, 0, len(terms))
	for _, t := range terms {
		surface := strings.TrimSpace(t.Text())
		if surface == "" || !IsWord(surface) {
			continue
		}
		cat, rule := Explain(t)
		words = append(words, Word{Text: surface, Category: cat, Rule: rule})
	}
	return words
}
