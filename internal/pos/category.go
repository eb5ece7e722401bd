package pos

import (
	"fmt"
	"strings"
)

// Category is one of the nine part-of-speech classes a word can fall into.
// Every word resolves to exactly one category; there is no "unknown".
type Category string

// The closed category domain, in angle order.
const (
	Conjunction  Category = "Conjunction"
	Article      Category = "Article"
	Adjective    Category = "Adjective"
	Adverb       Category = "Adverb"
	Preposition  Category = "Preposition"
	Interjection Category = "Interjection"
	Pronoun      Category = "Pronoun"
	Noun         Category = "Noun"
	Verb         Category = "Verb"
)

// Fallback is the category assigned when no rule matches. Nouns are the most
// common class in running text.
const Fallback = Noun

var categories = []Category{
	Conjunction, Article, Adjective, Adverb, Preposition,
	Interjection, Pronoun, Noun, Verb,
}

// Categories returns the full domain in angle order. The returned slice is a
// copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is a member of the domain.
func (c Category) Valid() bool {
	_, ok := angles[c]
	return ok
}

// String implements fmt.Stringer.
func (c Category) String() string { return string(c) }

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown part of speech %q", s)
}
