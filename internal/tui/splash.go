package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/nightsky/internal/pos"
)

// SplashConfig controls the binary-star animation shown while a sky is
// being generated.
type SplashConfig struct {
	Width     int
	Height    int
	OrbitRadX float64
	OrbitRadY float64
	SpikeLen  int
	FPS       int
	ShowTitle bool
}

// SpinnerConfig returns a compact config for the generating view.
func SpinnerConfig() SplashConfig {
	return SplashConfig{
		Width:     36,
		Height:    11,
		OrbitRadX: 6,
		OrbitRadY: 2.0,
		SpikeLen:  3,
		FPS:       30,
		ShowTitle: true,
	}
}

// SplashModel implements tea.Model for two stars orbiting each other. Each
// star cycles through the part-of-speech palette as it turns.
type SplashModel struct {
	cfg   SplashConfig
	frame int

	styleDim lipgloss.Style
	ramp     []lipgloss.Style
}

// splashTickMsg drives the animation frame clock.
type splashTickMsg time.Time

// NewSplash creates a SplashModel configured by cfg.
func NewSplash(cfg SplashConfig) SplashModel {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	ramp := make([]lipgloss.Style, 0, len(pos.Categories()))
	for _, c := range pos.Categories() {
		ramp = append(ramp, categoryStyles[c])
	}
	return SplashModel{
		cfg:      cfg,
		styleDim: lipgloss.NewStyle().Foreground(lipgloss.Color("#182038")),
		ramp:     ramp,
	}
}

// Init starts the animation tick.
func (s SplashModel) Init() tea.Cmd { return s.tick() }

func (s SplashModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(s.cfg.FPS), func(t time.Time) tea.Msg {
		return splashTickMsg(t)
	})
}

// Update advances the frame on each tick.
func (s SplashModel) Update(msg tea.Msg) (SplashModel, tea.Cmd) {
	if _, ok := msg.(splashTickMsg); ok {
		s.frame++
		return s, s.tick()
	}
	return s, nil
}

// View renders the current animation frame.
func (s SplashModel) View() string {
	return s.renderFrame(s.angle())
}

// angle turns 6° per frame.
func (s SplashModel) angle() float64 {
	return float64(s.frame) * 6.0 * math.Pi / 180.0
}

// Per-cell paint classes.
const (
	paintDim = iota
	paintHalo1
	paintCore1
	paintHalo2
	paintCore2
)

func (s SplashModel) renderFrame(angle float64) string {
	w, h := s.cfg.Width, s.cfg.Height
	cx, cy := float64(w)/2, float64(h)/2-1

	stars := [2][2]float64{
		{cx + s.cfg.OrbitRadX*math.Cos(angle), cy + s.cfg.OrbitRadY*math.Sin(angle)},
		{cx + s.cfg.OrbitRadX*math.Cos(angle+math.Pi), cy + s.cfg.OrbitRadY*math.Sin(angle+math.Pi)},
	}

	grid := make([][]rune, h)
	paint := make([][]int, h)
	for y := range h {
		grid[y] = make([]rune, w)
		paint[y] = make([]int, w)
		for x := range w {
			d1 := orbitDist(float64(x), float64(y), stars[0][0], stars[0][1])
			d2 := orbitDist(float64(x), float64(y), stars[1][0], stars[1][1])
			grid[y][x] = densityChar(math.Min(d1, d2))
			switch {
			case d1 < d2 && d1 < 9:
				paint[y][x] = paintHalo1
			case d2 <= d1 && d2 < 9:
				paint[y][x] = paintHalo2
			}
		}
	}
	for i, st := range stars {
		stampStar(grid, paint, st[0], st[1], s.cfg.SpikeLen, paintHalo1+2*i, paintCore1+2*i)
	}

	// The two stars sit half the palette apart and drift one color per
	// quarter turn.
	shift := s.frame / 15
	c1 := s.ramp[shift%len(s.ramp)]
	c2 := s.ramp[(shift+len(s.ramp)/2)%len(s.ramp)]
	styles := [...]lipgloss.Style{
		paintDim:   s.styleDim,
		paintHalo1: c1.Faint(true),
		paintCore1: c1.Bold(true),
		paintHalo2: c2.Faint(true),
		paintCore2: c2.Bold(true),
	}

	var sb strings.Builder
	for y := range h {
		for x := range w {
			sb.WriteString(styles[paint[y][x]].Render(string(grid[y][x])))
		}
		sb.WriteRune('\n')
	}

	if s.cfg.ShowTitle {
		title := "N  I  G  H  T  S  K  Y"
		pad := max(0, (w-len(title))/2)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#4a6888")).Render(strings.Repeat(" ", pad) + title))
		sb.WriteRune('\n')
	}
	return sb.String()
}

var densityRamp = []rune{' ', '.', '·', ':', '*'}

func densityChar(d float64) rune {
	switch {
	case d < 2:
		return densityRamp[4]
	case d < 5:
		return densityRamp[3]
	case d < 9:
		return densityRamp[2]
	case d < 13:
		return densityRamp[1]
	default:
		return densityRamp[0]
	}
}

// orbitDist stretches the vertical axis; terminal cells are about twice as
// tall as they are wide.
func orbitDist(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := (y1 - y2) * 2.1
	return math.Sqrt(dx*dx + dy*dy)
}

// stampStar draws diffraction spikes and a core at (sx, sy).
func stampStar(grid [][]rune, paint [][]int, sx, sy float64, spike, halo, core int) {
	h, w := len(grid), len(grid[0])
	ix, iy := int(math.Round(sx)), int(math.Round(sy))
	in := func(x, y int) bool { return x >= 0 && x < w && y >= 0 && y < h }

	dirs := [][3]int{
		{1, 0, '-'}, {-1, 0, '-'},
		{0, 1, '|'}, {0, -1, '|'},
		{1, -1, '/'}, {-1, 1, '/'},
		{1, 1, '\\'}, {-1, -1, '\\'},
	}
	for _, d := range dirs {
		for i := 1; i <= spike; i++ {
			x, y := ix+d[0]*i, iy+d[1]*i
			if !in(x, y) {
				continue
			}
			grid[y][x] = rune(d[2])
			if i == spike {
				grid[y][x] = '·'
			}
			paint[y][x] = halo
		}
	}
	if in(ix, iy) {
		grid[iy][ix] = '@'
		paint[iy][ix] = core
	}
}
