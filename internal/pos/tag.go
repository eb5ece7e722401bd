// Package pos classifies words into the nine part-of-speech categories that
// drive constellation layout. Classification sits on top of a Tagger, an
// external capability that annotates each word of a text with grammatical
// tags; a short chain of lexical overrides corrects the tagger on the
// closed-class function words it most often gets wrong.
package pos

// Tag is a grammatical tag a Tagger may attach to a term. A term usually
// carries several tags at once (e.g. Verb and Gerund).
type Tag string

// Tags understood by the classifier.
const (
	TagNoun         Tag = "Noun"
	TagVerb         Tag = "Verb"
	TagAdjective    Tag = "Adjective"
	TagAdverb       Tag = "Adverb"
	TagPronoun      Tag = "Pronoun"
	TagPreposition  Tag = "Preposition"
	TagConjunction  Tag = "Conjunction"
	TagDeterminer   Tag = "Determiner"
	TagModal        Tag = "Modal"
	TagAuxiliary    Tag = "Auxiliary"
	TagParticiple   Tag = "Participle"
	TagGerund       Tag = "Gerund"
	TagPossessive   Tag = "Possessive"
	TagComparative  Tag = "Comparative"
	TagSuperlative  Tag = "Superlative"
	TagCardinal     Tag = "Cardinal"
	TagOrdinal      Tag = "Ordinal"
	TagValue        Tag = "Value"
	TagQuestionWord Tag = "QuestionWord"
	TagInterjection Tag = "Interjection"
)

// Term is one tagged word of a document.
type Term interface {
	// Text returns the surface text of the term as it appeared in the input.
	Text() string
	// Has reports whether the tagger attached tag to this term.
	Has(tag Tag) bool
}

// Tagger annotates every word of text with grammatical tags. Tagging is
// context-sensitive, so callers pass the whole paragraph rather than single
// words. Implementations must return terms in input order.
type Tagger interface {
	Tag(text string) []Term
}

// TagSet is a simple Term implementation backed by a set of tags. Taggers
// and tests use it to build terms.
type TagSet struct {
	Word string
	Tags map[Tag]bool
}

// NewTagSet returns a term for word carrying tags.
func NewTagSet(word string, tags ...Tag) *TagSet {
	ts := &TagSet{Word: word, Tags: make(map[Tag]bool, len(tags))}
	for _, t := range tags {
		ts.Tags[t] = true
	}
	return ts
}

// Text implements Term.
func (ts *TagSet) Text() string { return ts.Word }

// Has implements Term.
func (ts *TagSet) Has(tag Tag) bool { return ts.Tags[tag] }

// Add attaches tags to the term.
func (ts *TagSet) Add(tags ...Tag) {
	for _, t := range tags {
		ts.Tags[t] = true
	}
}
