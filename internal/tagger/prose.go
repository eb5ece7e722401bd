package tagger

import (
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/papapumpkin/nightsky/internal/pos"
)

// Prose tags text with prose's averaged perceptron model and translates its
// Penn Treebank tags into pos tags. If the model fails to load, Prose falls
// back to the lexicon so tagging never fails.
type Prose struct {
	fallback *Lexicon
}

// NewProse returns a prose-backed tagger.
func NewProse() *Prose {
	return &Prose{fallback: NewLexicon()}
}

// Tag implements pos.Tagger.
func (p *Prose) Tag(text string) []pos.Term {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return p.fallback.Tag(text)
	}
	tokens := doc.Tokens()
	terms := make([]pos.Term, 0, len(tokens))
	for _, tok := range tokens {
		terms = append(terms, pos.NewTagSet(tok.Text, PennTags(tok.Text, tok.Tag)...))
	}
	return terms
}

var auxiliaries = map[string]bool{
	"am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "'s": true, "'re": true, "'m": true,
	"have": true, "has": true, "had": true, "having": true, "'ve": true, "'d": true,
	"do": true, "does": true, "did": true,
}

var ordinals = map[string]bool{
	"first": true, "second": true, "third": true, "fourth": true, "fifth": true,
	"sixth": true, "seventh": true, "eighth": true, "ninth": true, "tenth": true,
}

// PennTags maps a Penn Treebank tag for word onto pos tags. Unknown and
// punctuation tags map to nothing.
func PennTags(word, penn string) []pos.Tag {
	lower := strings.ToLower(word)
	var tags []pos.Tag
	switch penn {
	case "NN", "NNS", "NNP", "NNPS", "FW", "EX":
		tags = append(tags, pos.TagNoun)
	case "VB", "VBD", "VBP", "VBZ":
		tags = append(tags, pos.TagVerb)
	case "VBG":
		tags = append(tags, pos.TagVerb, pos.TagGerund)
	case "VBN":
		tags = append(tags, pos.TagVerb, pos.TagParticiple)
	case "MD":
		tags = append(tags, pos.TagVerb, pos.TagModal)
	case "JJ":
		tags = append(tags, pos.TagAdjective)
	case "JJR":
		tags = append(tags, pos.TagAdjective, pos.TagComparative)
	case "JJS":
		tags = append(tags, pos.TagAdjective, pos.TagSuperlative)
	case "RB", "RBR", "RBS", "RP":
		tags = append(tags, pos.TagAdverb)
	case "PRP":
		tags = append(tags, pos.TagPronoun)
	case "PRP$":
		tags = append(tags, pos.TagPronoun, pos.TagPossessive)
	case "WP", "WP$":
		tags = append(tags, pos.TagPronoun, pos.TagQuestionWord)
	case "WDT":
		tags = append(tags, pos.TagDeterminer, pos.TagQuestionWord)
	case "WRB":
		tags = append(tags, pos.TagAdverb, pos.TagQuestionWord)
	case "IN", "TO":
		tags = append(tags, pos.TagPreposition)
	case "CC":
		tags = append(tags, pos.TagConjunction)
	case "DT", "PDT":
		tags = append(tags, pos.TagDeterminer)
	case "CD":
		tags = append(tags, pos.TagCardinal, pos.TagValue)
	case "UH":
		tags = append(tags, pos.TagInterjection)
	case "POS":
		tags = append(tags, pos.TagPossessive)
	}
	if strings.HasPrefix(penn, "VB") && auxiliaries[lower] {
		tags = append(tags, pos.TagAuxiliary)
	}
	if ordinals[lower] {
		tags = append(tags, pos.TagOrdinal, pos.TagValue)
	}
	return tags
}
