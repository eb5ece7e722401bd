package pos

// Shape is the glyph a star is drawn with.
type Shape string

// Star glyphs.
const (
	ShapeCircle Shape = "circle"
	ShapeStar   Shape = "star"
)

// Walking directions in degrees, spread uniformly every 40°.
var angles = map[Category]float64{
	Conjunction:  0,
	Article:      40,
	Adjective:    80,
	Adverb:       120,
	Preposition:  160,
	Interjection: 200,
	Pronoun:      240,
	Noun:         280,
	Verb:         320,
}

var colors = map[Category]string{
	Noun:         "#F4C842",
	Verb:         "#DC3545",
	Adjective:    "#FF8C42",
	Adverb:       "#7DB9DE",
	Pronoun:      "#8FBC8F",
	Preposition:  "#6B8E23",
	Conjunction:  "#708090",
	Article:      "#4A4A4A",
	Interjection: "#E6E6FA",
}

// Content words that modify or act render as five-point stars when shapes
// are drawn by class; everything else stays a circle.
var classShapes = map[Category]Shape{
	Conjunction:  ShapeCircle,
	Article:      ShapeCircle,
	Adjective:    ShapeStar,
	Adverb:       ShapeStar,
	Preposition:  ShapeStar,
	Interjection: ShapeCircle,
	Pronoun:      ShapeCircle,
	Noun:         ShapeCircle,
	Verb:         ShapeStar,
}

// Angle returns the walking direction for c in degrees. Categories outside
// the domain walk in the fallback direction.
func Angle(c Category) float64 {
	if a, ok := angles[c]; ok {
		return a
	}
	return angles[Fallback]
}

// Color returns the hex fill color for c.
func Color(c Category) string {
	if col, ok := colors[c]; ok {
		return col
	}
	return colors[Fallback]
}

// ShapeFor returns the glyph for c. With byClass false every category is a
// circle.
func ShapeFor(c Category, byClass bool) Shape {
	if !byClass {
		return ShapeCircle
	}
	if s, ok := classShapes[c]; ok {
		return s
	}
	return ShapeCircle
}
