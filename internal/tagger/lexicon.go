package tagger

import (
	"strings"
	"unicode"

	"github.com/papapumpkin/nightsky/internal/pos"
)

// Lexicon tags closed-class words from fixed word lists and open-class words
// from suffixes. Unknown words are tagged as nouns. It is deterministic and
// carries no model, which makes it the tagger of choice for tests and for
// reproducible output across machines.
type Lexicon struct {
	words map[string][]pos.Tag
}

type entry struct {
	tags  []pos.Tag
	words string
}

var lexiconEntries = []entry{
	{[]pos.Tag{pos.TagDeterminer}, "the a an this that these those every each some any no all both either neither another such"},
	{[]pos.Tag{pos.TagPreposition}, "of in on at to from by with about into over under after before through during without within upon across against among around behind below beneath beside between beyond near off onto toward towards past since until till via like for"},
	{[]pos.Tag{pos.TagConjunction}, "and but or nor yet because although though while if unless whereas whether"},
	{[]pos.Tag{pos.TagPronoun}, "i you he she it we they me him her us them myself yourself himself herself itself ourselves themselves someone anyone everyone nobody something anything everything nothing"},
	{[]pos.Tag{pos.TagPronoun, pos.TagPossessive}, "my your his its our their mine yours hers ours theirs"},
	{[]pos.Tag{pos.TagPronoun, pos.TagQuestionWord}, "who whom whose what which"},
	{[]pos.Tag{pos.TagAdverb, pos.TagQuestionWord}, "where when why how"},
	{[]pos.Tag{pos.TagVerb, pos.TagModal}, "can could may might must shall should will would"},
	{[]pos.Tag{pos.TagVerb, pos.TagAuxiliary}, "am is are was were be been being have has had having do does did"},
	{[]pos.Tag{pos.TagInterjection}, "oh wow hey ah uh hmm alas ouch oops hello hurrah"},
	{[]pos.Tag{pos.TagAdverb}, "not very too also just never always often sometimes here there now then soon quite rather almost even still again already perhaps"},
	{[]pos.Tag{pos.TagAdjective}, "good bad great small large big little old new young long short high low single different same other own next last few many much dark bright cold warm white black red blue green yellow happy sad real whole true free full strange wide thick heavy odd sure"},
	{[]pos.Tag{pos.TagCardinal, pos.TagValue}, "one two three four five six seven eight nine ten eleven twelve twenty hundred thousand million"},
	{[]pos.Tag{pos.TagOrdinal, pos.TagValue}, "first second third fourth fifth sixth seventh eighth ninth tenth"},
}

type suffixRule struct {
	suffix string
	minLen int
	tags   []pos.Tag
}

var suffixRules = []suffixRule{
	{"ly", 4, []pos.Tag{pos.TagAdverb}},
	{"ing", 5, []pos.Tag{pos.TagVerb, pos.TagGerund}},
	{"ed", 4, []pos.Tag{pos.TagVerb, pos.TagParticiple}},
	{"ous", 5, []pos.Tag{pos.TagAdjective}},
	{"ful", 5, []pos.Tag{pos.TagAdjective}},
	{"ive", 5, []pos.Tag{pos.TagAdjective}},
	{"able", 6, []pos.Tag{pos.TagAdjective}},
	{"ible", 6, []pos.Tag{pos.TagAdjective}},
	{"less", 6, []pos.Tag{pos.TagAdjective}},
	{"tion", 6, []pos.Tag{pos.TagNoun}},
	{"sion", 6, []pos.Tag{pos.TagNoun}},
	{"ment", 6, []pos.Tag{pos.TagNoun}},
	{"ness", 6, []pos.Tag{pos.TagNoun}},
	{"ity", 5, []pos.Tag{pos.TagNoun}},
}

// NewLexicon builds the lexicon tagger.
func NewLexicon() *Lexicon {
	l := &Lexicon{words: make(map[string][]pos.Tag)}
	for _, e := range lexiconEntries {
		for _, w := range strings.Fields(e.words) {
			l.words[w] = append(l.words[w], e.tags...)
		}
	}
	return l
}

// Tag implements pos.Tagger.
func (l *Lexicon) Tag(text string) []pos.Term {
	tokens := tokenize(text)
	terms := make([]pos.Term, 0, len(tokens))
	for _, tok := range tokens {
		terms = append(terms, pos.NewTagSet(tok, l.tagsFor(tok)...))
	}
	return terms
}

func (l *Lexicon) tagsFor(tok string) []pos.Tag {
	if !pos.IsWord(tok) {
		return nil
	}
	word := strings.ToLower(tok)
	if tags, ok := l.words[word]; ok {
		return tags
	}
	if isNumber(word) {
		return []pos.Tag{pos.TagCardinal, pos.TagValue}
	}
	if base, ok := strings.CutSuffix(strings.ReplaceAll(word, "’", "'"), "'s"); ok && base != "" {
		return []pos.Tag{pos.TagNoun, pos.TagPossessive}
	}
	for _, r := range suffixRules {
		if len(word) >= r.minLen && strings.HasSuffix(word, r.suffix) {
			return r.tags
		}
	}
	return []pos.Tag{pos.TagNoun}
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return false
		}
	}
	return s != ""
}
