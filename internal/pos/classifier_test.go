package pos

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fieldTagger splits on whitespace and tags from a fixed lexicon.
type fieldTagger map[string][]Tag

func (f fieldTagger) Tag(text string) []Term {
	var terms []Term
	for _, w := range strings.Fields(text) {
		terms = append(terms, NewTagSet(w, f[strings.ToLower(w)]...))
	}
	return terms
}

func TestClassifyTextSkipsPunctuation(t *testing.T) {
	t.Parallel()

	tagger := fieldTagger{
		"stars": {TagNoun},
		"shine": {TagVerb},
	}
	c := NewClassifier(tagger)
	got := c.ClassifyText("Oh , the stars — shine !")
	want := []Word{
		{Text: "Oh", Category: Interjection, Rule: "interjection"},
		{Text: "the", Category: Article, Rule: "article"},
		{Text: "stars", Category: Noun, Rule: "noun"},
		{Text: "shine", Category: Verb, Rule: "verb"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClassifyText mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyTextEmpty(t *testing.T) {
	t.Parallel()

	c := NewClassifier(fieldTagger{})
	if got := c.ClassifyText("   "); len(got) != 0 {
		t.Errorf("ClassifyText(blank) = %v, want no words", got)
	}
}
