package sky

import "math"

// focusSpan is the share of the display (in percent) an isolated
// constellation is scaled to fill.
const focusSpan = 60

// Transform recenters and scales one constellation so it fills the display.
type Transform struct {
	CenterX float64
	CenterY float64
	Scale   float64
}

// Apply maps a point through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return (x-t.CenterX)*t.Scale + 50, (y-t.CenterY)*t.Scale + 50
}

// Focus computes the transform that isolates paragraph p. It reports false
// when the paragraph has no stars.
func Focus(s Scene, p int) (Transform, bool) {
	idx := s.StarsOf(p)
	if len(idx) == 0 {
		return Transform{}, false
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, i := range idx {
		st := s.Stars[i]
		minX, maxX = math.Min(minX, st.X), math.Max(maxX, st.X)
		minY, maxY = math.Min(minY, st.Y), math.Max(maxY, st.Y)
	}
	t := Transform{CenterX: (minX + maxX) / 2, CenterY: (minY + maxY) / 2, Scale: 1}
	if span := math.Max(maxX-minX, maxY-minY); span > 0 {
		t.Scale = focusSpan / span
	}
	return t, true
}

// Isolate returns a scene holding only paragraph p, transformed to fill the
// display, with connections re-indexed into the smaller star list.
func (s Scene) Isolate(p int) (Scene, error) {
	if p < 0 || p >= len(s.Paragraphs) {
		return Scene{}, ErrNoSuchParagraph
	}
	out := Scene{Stars: []Star{}, Connections: []Connection{}, Paragraphs: []string{s.Paragraphs[p]}}
	t, ok := Focus(s, p)
	if !ok {
		return out, nil
	}
	remap := make(map[int]int)
	for _, i := range s.StarsOf(p) {
		st := s.Stars[i]
		st.X, st.Y = t.Apply(st.X, st.Y)
		remap[i] = len(out.Stars)
		out.Stars = append(out.Stars, st)
	}
	for _, c := range s.Connections {
		if c.Paragraph != p {
			continue
		}
		from, okFrom := remap[c.From]
		to, okTo := remap[c.To]
		if okFrom && okTo {
			out.Connections = append(out.Connections, Connection{From: from, To: to, Paragraph: p})
		}
	}
	return out, nil
}
