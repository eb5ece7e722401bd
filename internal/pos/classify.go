package pos

import (
	"strings"
	"unicode"
)

// Closed word lists consulted before the tagger.
var (
	articles      = map[string]bool{"the": true, "a": true, "an": true}
	interjections = map[string]bool{"oh": true, "wow": true, "hey": true, "ah": true, "uh": true, "hmm": true}
	conjunctions  = map[string]bool{
		"that": true, "and": true, "but": true, "or": true, "so": true,
		"because": true, "although": true, "while": true, "if": true,
	}
	pronouns = map[string]bool{
		"i": true, "you": true, "he": true, "she": true, "it": true, "we": true,
		"they": true, "me": true, "him": true, "her": true, "us": true, "them": true,
	}
)

// rule is one step of the classification chain. match receives the term and
// its lowercased, trimmed text.
type rule struct {
	name     string
	category Category
	match    func(t Term, word string) bool
}

func hasAny(t Term, tags ...Tag) bool {
	for _, tag := range tags {
		if t.Has(tag) {
			return true
		}
	}
	return false
}

// chain is evaluated top to bottom; the first match wins. Lexical overrides
// come first because generic taggers are least reliable on short function
// words.
var chain = []rule{
	{"article", Article, func(_ Term, w string) bool {
		return articles[w]
	}},
	{"interjection", Interjection, func(t Term, w string) bool {
		return t.Has(TagInterjection) || interjections[w]
	}},
	{"conjunction", Conjunction, func(t Term, w string) bool {
		return t.Has(TagConjunction) || conjunctions[w]
	}},
	{"preposition", Preposition, func(t Term, _ string) bool {
		return t.Has(TagPreposition)
	}},
	{"pronoun", Pronoun, func(t Term, w string) bool {
		return t.Has(TagPronoun) || pronouns[w]
	}},
	{"adverb", Adverb, func(t Term, w string) bool {
		return t.Has(TagAdverb) || strings.HasSuffix(w, "ly")
	}},
	{"adjective", Adjective, func(t Term, w string) bool {
		return hasAny(t, TagAdjective, TagComparative, TagSuperlative) ||
			strings.HasSuffix(w, "er") || strings.HasSuffix(w, "est")
	}},
	{"verb", Verb, func(t Term, _ string) bool {
		return hasAny(t, TagVerb, TagModal, TagAuxiliary, TagParticiple, TagGerund)
	}},
	{"noun", Noun, func(t Term, _ string) bool {
		return hasAny(t, TagNoun, TagCardinal, TagOrdinal, TagValue, TagDeterminer, TagPossessive)
	}},
}

// Classify returns the category of a tagged term. It never fails: terms no
// rule recognises resolve to Fallback.
func Classify(t Term) Category {
	c, _ := Explain(t)
	return c
}

// Explain is Classify that also names the rule that decided, or "fallback".
func Explain(t Term) (Category, string) {
	word := strings.ToLower(strings.TrimSpace(t.Text()))
	for _, r := range chain {
		if r.match(t, word) {
			return r.category, r.name
		}
	}
	return Fallback, "fallback"
}

// IsWord reports whether s contains at least one letter or digit. Taggers
// emit punctuation as separate terms; those never become stars.
func IsWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
