package sky

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/papapumpkin/nightsky/internal/pos"
)

// Defaults for Engine options.
const (
	DefaultEdgeMultiplier = 1.5
	DefaultMargin         = 10.0
)

// Observer receives a callback after each paragraph is laid out. The stars
// slice must not be retained.
type Observer interface {
	ParagraphLaidOut(index int, area Area, stars []Star, connections []Connection)
}

// Engine turns text into scenes. It holds only configuration, so one Engine
// may serve any number of Generate calls.
type Engine struct {
	classifier   *pos.Classifier
	strategy     Strategy
	multiplier   float64
	margin       float64
	shapeByClass bool
	observer     Observer
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrategy selects the placement strategy.
func WithStrategy(s Strategy) Option { return func(e *Engine) { e.strategy = s } }

// WithEdgeMultiplier sets how far the walking cursor moves per character.
func WithEdgeMultiplier(m float64) Option { return func(e *Engine) { e.multiplier = m } }

// WithMargin keeps stars within [margin, 100-margin] on both axes.
func WithMargin(m float64) Option { return func(e *Engine) { e.margin = m } }

// WithShapeByClass draws verbs and modifiers as five-point stars instead of
// circles.
func WithShapeByClass(on bool) Option { return func(e *Engine) { e.shapeByClass = on } }

// WithObserver registers an observer for per-paragraph progress.
func WithObserver(o Observer) Option { return func(e *Engine) { e.observer = o } }

// New returns an Engine classifying words with tagger.
func New(tagger pos.Tagger, opts ...Option) *Engine {
	e := &Engine{
		classifier: pos.NewClassifier(tagger),
		strategy:   StrategyWalking,
		multiplier: DefaultEdgeMultiplier,
		margin:     DefaultMargin,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate lays out every paragraph of text. Blank paragraphs are skipped;
// blank text yields an empty scene.
func (e *Engine) Generate(text string) Scene {
	paragraphs := SplitParagraphs(text)
	scene := Scene{
		Stars:       []Star{},
		Connections: []Connection{},
		Paragraphs:  paragraphs,
	}
	if scene.Paragraphs == nil {
		scene.Paragraphs = []string{}
	}
	for i, p := range paragraphs {
		area := AreaFor(i, len(paragraphs))
		stars, conns := e.constellation(p, area, i, len(scene.Stars))
		scene.Stars = append(scene.Stars, stars...)
		scene.Connections = append(scene.Connections, conns...)
		if e.observer != nil {
			e.observer.ParagraphLaidOut(i, area, stars, conns)
		}
	}
	return scene
}

// constellation lays out one paragraph. offset is the number of stars
// already in the scene; connection indices are global.
func (e *Engine) constellation(paragraph string, area Area, index, offset int) ([]Star, []Connection) {
	words := e.classifier.ClassifyText(paragraph)
	stars := make([]Star, 0, len(words))
	var conns []Connection

	lo, hi := e.margin, 100-e.margin
	pl := newPlacer(e.strategy, area, e.multiplier)
	for k, w := range words {
		length := utf8.RuneCountInString(w.Text)
		x, y := pl.place(k, pos.Angle(w.Category), length)
		star := Star{
			X:         clamp(x, lo, hi),
			Y:         clamp(y, lo, hi),
			Size:      SizeFor(length),
			Paragraph: index,
			Color:     pos.Color(w.Category),
			Shape:     pos.ShapeFor(w.Category, e.shapeByClass),
			Category:  w.Category,
			Word:      cleanWord(w.Text),
		}
		if k == 0 {
			star.Roman = Roman(index + 1)
		} else {
			conns = append(conns, Connection{From: offset + k - 1, To: offset + k, Paragraph: index})
		}
		stars = append(stars, star)
	}
	return stars, conns
}

// Classify exposes the engine's word classification for a single text.
func (e *Engine) Classify(text string) []pos.Word {
	return e.classifier.ClassifyText(text)
}

func cleanWord(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}
