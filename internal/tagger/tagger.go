// Package tagger provides the part-of-speech taggers the classifier runs on:
// a statistical tagger backed by prose and a small deterministic lexicon
// tagger that needs no model.
package tagger

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/papapumpkin/nightsky/internal/pos"
)

// ErrUnknownTagger indicates a tagger name that New does not recognise.
var ErrUnknownTagger = errors.New("unknown tagger")

// Tagger names accepted by New.
const (
	NameProse   = "prose"
	NameLexicon = "lexicon"
)

// Names lists the accepted tagger names.
func Names() []string { return []string{NameProse, NameLexicon} }

// New returns the tagger registered under name.
func New(name string) (pos.Tagger, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameProse, "":
		return NewProse(), nil
	case NameLexicon:
		return NewLexicon(), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTagger, name, strings.Join(Names(), ", "))
}

// tokenRe splits text into words (keeping inner apostrophes and hyphens) and
// single punctuation marks.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’\-][\p{L}\p{N}]+)*|[^\s\p{L}\p{N}]`)

func tokenize(text string) []string {
	return tokenRe.FindAllString(text, -1)
}
