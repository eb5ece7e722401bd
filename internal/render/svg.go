// Package render draws scenes as SVG.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/papapumpkin/nightsky/internal/pos"
	"github.com/papapumpkin/nightsky/internal/sky"
)

// Drawing constants, in pixels at the reference size.
const (
	DefaultSize   = 1000
	referenceSize = 500
	padding       = 40
	innerRatio    = 0.4
	labelOffset   = 14
	skyColor      = "#0B1026"
)

// NoFocus draws every paragraph.
const NoFocus = -1

// ErrBadSize is returned for canvases too small to draw on.
var ErrBadSize = errors.New("render: size must be larger than twice the padding")

var starRadius = map[sky.Size]float64{
	sky.SizeLarge:  6,
	sky.SizeMedium: 4,
	sky.SizeSmall:  2.5,
	sky.SizeTiny:   1.5,
}

// Options control an SVG render.
type Options struct {
	Size       int
	Background []sky.Star
	// Focus isolates one paragraph when it is not NoFocus.
	Focus int
	Title string
}

// DefaultOptions draws the whole scene on a DefaultSize canvas.
func DefaultOptions() Options {
	return Options{Size: DefaultSize, Focus: NoFocus}
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// StarPoints returns the ten vertices of a five-point star centered on
// (cx, cy) with outer radius r, starting at the top and alternating outer
// and inner vertices.
func StarPoints(cx, cy, r float64) []Point {
	pts := make([]Point, 10)
	for i := range pts {
		rad := r
		if i%2 == 1 {
			rad = r * innerRatio
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		pts[i] = Point{X: cx + rad*math.Cos(a), Y: cy + rad*math.Sin(a)}
	}
	return pts
}

type canvas struct {
	*svg.SVG
	size int
}

// px maps a percentage coordinate onto the padded canvas.
func (c canvas) px(p float64) float64 {
	return p/100*float64(c.size-2*padding) + padding
}

func (c canvas) radius(s sky.Size) float64 {
	r, ok := starRadius[s]
	if !ok {
		r = starRadius[sky.SizeTiny]
	}
	return r * float64(c.size) / referenceSize
}

func round(v float64) int { return int(math.Round(v)) }

// SVG writes scene to w.
func SVG(w io.Writer, scene sky.Scene, opts Options) error {
	if opts.Size <= 2*padding {
		return fmt.Errorf("%w: got %d", ErrBadSize, opts.Size)
	}
	if opts.Focus != NoFocus {
		iso, err := scene.Isolate(opts.Focus)
		if err != nil {
			return fmt.Errorf("render: focus %d: %w", opts.Focus, err)
		}
		scene = iso
	}

	c := canvas{SVG: svg.New(w), size: opts.Size}
	c.Start(opts.Size, opts.Size)
	if opts.Title != "" {
		c.Title(opts.Title)
	}
	c.Rect(0, 0, opts.Size, opts.Size, "fill:"+skyColor)

	mid := round(c.px(50))
	c.Circle(mid, mid, round(c.px(95)-c.px(50)),
		"fill:none;stroke:#FFFFFF;stroke-opacity:0.25;stroke-width:1;stroke-dasharray:6,6")

	c.Gid("background")
	for _, st := range opts.Background {
		c.star(st, 0.5)
	}
	c.Gend()

	c.Gid("connections")
	for _, conn := range scene.Connections {
		if conn.From < 0 || conn.To < 0 || conn.From >= len(scene.Stars) || conn.To >= len(scene.Stars) {
			continue
		}
		a, b := scene.Stars[conn.From], scene.Stars[conn.To]
		c.Line(round(c.px(a.X)), round(c.px(a.Y)), round(c.px(b.X)), round(c.px(b.Y)),
			"stroke:#FFFFFF;stroke-opacity:0.35;stroke-width:1")
	}
	c.Gend()

	c.Gid("stars")
	for _, st := range scene.Stars {
		c.star(st, 1)
	}
	c.Gend()

	c.Gid("labels")
	for _, st := range scene.Stars {
		if st.Roman != "" {
			c.label(st)
		}
	}
	c.Gend()

	c.End()
	return nil
}

func (c canvas) star(st sky.Star, opacity float64) {
	x, y, r := c.px(st.X), c.px(st.Y), c.radius(st.Size)
	style := fmt.Sprintf("fill:%s;fill-opacity:%.2f", st.Color, opacity)
	if st.Shape == pos.ShapeStar {
		pts := StarPoints(x, y, r*1.5)
		xs, ys := make([]int, len(pts)), make([]int, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = round(p.X), round(p.Y)
		}
		c.Polygon(xs, ys, style)
		return
	}
	c.Circle(round(x), round(y), max(1, round(r)), style)
}

// label places the Roman numeral beside st, pushed away from the sky's
// center so it does not sit over the constellation.
func (c canvas) label(st sky.Star) {
	dx, dy := st.X-50, st.Y-50
	d := math.Hypot(dx, dy)
	if d == 0 {
		dx, dy, d = 0, -1, 1
	}
	off := labelOffset * float64(c.size) / referenceSize
	x := c.px(st.X) + dx/d*off
	y := c.px(st.Y) + dy/d*off
	fontSize := max(8, round(11*float64(c.size)/referenceSize))
	c.Text(round(x), round(y), st.Roman,
		fmt.Sprintf("fill:#E6E6FA;font-family:serif;font-size:%dpx;text-anchor:middle;dominant-baseline:middle", fontSize))
}
