package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/nightsky/internal/pos"
	"github.com/papapumpkin/nightsky/internal/sky"
)

// Star glyphs by size class.
var sizeGlyphs = map[sky.Size]rune{
	sky.SizeLarge:  '✦',
	sky.SizeMedium: '*',
	sky.SizeSmall:  '+',
	sky.SizeTiny:   '·',
}

const (
	glyphEdge       = '·'
	glyphBackground = '.'
	glyphShapeStar  = '★'
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellBackground
	cellEdge
	cellStar
	cellNumeral
)

type cell struct {
	r     rune
	kind  cellKind
	color string
}

// SkyView rasterizes a scene onto a character grid. Percent coordinates map
// linearly onto Width columns and Height rows.
type SkyView struct {
	Width      int
	Height     int
	Background []sky.Star
}

// NewSkyView returns a view of the given size.
func NewSkyView(width, height int) SkyView {
	return SkyView{Width: width, Height: height}
}

func (v SkyView) col(x float64) int {
	return clampInt(int(math.Round(x/100*float64(v.Width-1))), 0, v.Width-1)
}

func (v SkyView) row(y float64) int {
	return clampInt(int(math.Round(y/100*float64(v.Height-1))), 0, v.Height-1)
}

// Grid returns the plain glyphs, one string per row, without styling.
func (v SkyView) Grid(scene sky.Scene) []string {
	cells := v.raster(scene)
	rows := make([]string, len(cells))
	for y, line := range cells {
		var sb strings.Builder
		for _, c := range line {
			if c.kind == cellEmpty {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(c.r)
		}
		rows[y] = sb.String()
	}
	return rows
}

// Render returns the styled canvas.
func (v SkyView) Render(scene sky.Scene) string {
	cells := v.raster(scene)
	var sb strings.Builder
	for y, line := range cells {
		for _, c := range line {
			sb.WriteString(styleCell(c))
		}
		if y < len(cells)-1 {
			sb.WriteRune('\n')
		}
	}
	return styleSkyFrame.Render(sb.String())
}

func styleCell(c cell) string {
	s := string(c.r)
	switch c.kind {
	case cellEmpty:
		return " "
	case cellBackground:
		return styleBackgroundStar.Render(s)
	case cellEdge:
		return styleEdge.Render(s)
	case cellNumeral:
		return styleNumeral.Render(s)
	default:
		return starStyle(c.color).Render(s)
	}
}

// raster draws background, then edges, then stars, then numerals; later
// layers overwrite earlier ones.
func (v SkyView) raster(scene sky.Scene) [][]cell {
	if v.Width <= 0 || v.Height <= 0 {
		return nil
	}
	cells := make([][]cell, v.Height)
	for y := range cells {
		cells[y] = make([]cell, v.Width)
	}
	put := func(x, y int, c cell) {
		if x >= 0 && x < v.Width && y >= 0 && y < v.Height {
			cells[y][x] = c
		}
	}

	for _, st := range v.Background {
		put(v.col(st.X), v.row(st.Y), cell{r: glyphBackground, kind: cellBackground})
	}
	for _, c := range scene.Connections {
		if c.From < 0 || c.To < 0 || c.From >= len(scene.Stars) || c.To >= len(scene.Stars) {
			continue
		}
		a, b := scene.Stars[c.From], scene.Stars[c.To]
		for _, p := range bresenham(v.col(a.X), v.row(a.Y), v.col(b.X), v.row(b.Y)) {
			put(p[0], p[1], cell{r: glyphEdge, kind: cellEdge})
		}
	}
	for _, st := range scene.Stars {
		g, ok := sizeGlyphs[st.Size]
		if !ok {
			g = sizeGlyphs[sky.SizeTiny]
		}
		if st.Shape == pos.ShapeStar {
			g = glyphShapeStar
		}
		put(v.col(st.X), v.row(st.Y), cell{r: g, kind: cellStar, color: st.Color})
	}
	for _, st := range scene.Stars {
		if st.Roman == "" {
			continue
		}
		x, y := v.col(st.X)+2, v.row(st.Y)
		if x+len(st.Roman) > v.Width {
			x = v.col(st.X) - 1 - len(st.Roman)
		}
		for i, r := range st.Roman {
			put(x+i, y, cell{r: r, kind: cellNumeral})
		}
	}
	return cells
}

// bresenham returns the grid points on the segment from (x0, y0) to
// (x1, y1), endpoints included.
func bresenham(x0, y0, x1, y1 int) [][2]int {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	var pts [][2]int
	for {
		pts = append(pts, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// renderLegend lists each category in its star color.
func renderLegend() string {
	var parts []string
	for _, c := range pos.Categories() {
		parts = append(parts, categoryStyles[c].Render("●")+" "+styleRowNormal.Render(string(c)))
	}
	var rows []string
	for i := 0; i < len(parts); i += 3 {
		end := min(i+3, len(parts))
		rows = append(rows, strings.Join(parts[i:end], "   "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
