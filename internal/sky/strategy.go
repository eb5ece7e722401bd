package sky

import (
	"fmt"
	"math"
	"strings"
)

// Strategy selects how words are positioned inside a paragraph's area.
type Strategy string

const (
	// StrategyWalking advances a cursor from word to word; each step points
	// in the word's part-of-speech direction and is as long as the word.
	StrategyWalking Strategy = "walking"
	// StrategyRadial places every word relative to the area center, fanning
	// successive words out by 15°. Layouts stay compact for long paragraphs.
	StrategyRadial Strategy = "radial"
)

// ParseStrategy resolves a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyWalking, "":
		return StrategyWalking, nil
	case StrategyRadial:
		return StrategyRadial, nil
	}
	return "", fmt.Errorf("unknown layout strategy %q", s)
}

// placer yields the unclamped position of each successive word.
type placer interface {
	place(k int, angleDeg float64, length int) (x, y float64)
}

type walker struct {
	x, y       float64
	multiplier float64
}

func (w *walker) place(k int, angleDeg float64, length int) (float64, float64) {
	if k == 0 {
		return w.x, w.y
	}
	theta := angleDeg * math.Pi / 180
	dist := float64(length) * w.multiplier
	w.x += dist * math.Cos(theta)
	w.y += dist * math.Sin(theta)
	return w.x, w.y
}

type radial struct {
	area Area
}

func (r radial) place(k int, angleDeg float64, length int) (float64, float64) {
	theta := (angleDeg + 15*float64(k)) * math.Pi / 180
	dist := math.Min(0.3*r.area.Radius, 3*float64(length)+2*float64(k))
	return r.area.CenterX + dist*math.Cos(theta), r.area.CenterY + dist*math.Sin(theta)
}

func newPlacer(s Strategy, area Area, multiplier float64) placer {
	if s == StrategyRadial {
		return radial{area: area}
	}
	return &walker{x: area.CenterX, y: area.CenterY, multiplier: multiplier}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
