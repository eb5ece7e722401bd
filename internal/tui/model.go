package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/nightsky/internal/sky"
)

// DefaultMinDelay keeps the generating view on screen long enough to be seen.
const DefaultMinDelay = 800 * time.Millisecond

// Fallback canvas size before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
	listWidth     = 34
)

// msgGenerated carries a finished scene back to the model.
type msgGenerated struct {
	scene sky.Scene
}

// AppModel is the root model: a text box, then a generating animation, then
// the sky with a paragraph list beside it.
type AppModel struct {
	Session    *sky.Session
	Engine     *sky.Engine
	Input      textarea.Model
	Spinner    SplashModel
	Keys       KeyMap
	Help       help.Model
	Background []sky.Star
	MinDelay   time.Duration

	Cursor     int
	ShowLegend bool
	Width      int
	Height     int
	Err        error
}

// NewAppModel creates a model that lays out text with engine. background
// stars are drawn behind every scene.
func NewAppModel(engine *sky.Engine, background []sky.Star) AppModel {
	ta := textarea.New()
	ta.Placeholder = "Paste a poem, a letter, a chapter. Blank lines separate constellations."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(defaultWidth - 4)
	ta.SetHeight(defaultHeight - 8)
	ta.Focus()

	return AppModel{
		Session:    &sky.Session{},
		Engine:     engine,
		Input:      ta,
		Spinner:    NewSplash(SpinnerConfig()),
		Keys:       DefaultKeyMap(),
		Help:       help.New(),
		Background: background,
		MinDelay:   DefaultMinDelay,
	}
}

// Init starts the cursor blink.
func (m AppModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles all incoming messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Input.SetWidth(max(20, msg.Width-4))
		m.Input.SetHeight(max(3, msg.Height-8))
		return m, nil

	case splashTickMsg:
		if m.Session.State() != sky.StateGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case msgGenerated:
		if err := m.Session.Complete(msg.scene); err != nil {
			m.Err = err
			return m, nil
		}
		m.Cursor = 0
		m.Err = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.Session.State() == sky.StateInput {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.Session.State() {
	case sky.StateInput:
		if key.Matches(msg, m.Keys.Generate) {
			return m.submit()
		}
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd

	case sky.StateGenerating:
		return m, nil
	}

	// Results.
	n := len(m.Session.Scene().Paragraphs)
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < n-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Isolate):
		if err := m.Session.Select(m.Cursor); err != nil {
			m.Err = err
		}
	case key.Matches(msg, m.Keys.Clear):
		m.Session.ClearSelection()
	case key.Matches(msg, m.Keys.Legend):
		m.ShowLegend = !m.ShowLegend
	case key.Matches(msg, m.Keys.Reset):
		if err := m.Session.Reset(); err != nil {
			m.Err = err
			return m, nil
		}
		m.Input.SetValue(m.Session.Text())
		m.Cursor = 0
		m.Err = nil
		return m, m.Input.Focus()
	}
	return m, nil
}

func (m AppModel) submit() (tea.Model, tea.Cmd) {
	text := m.Input.Value()
	if err := m.Session.Submit(text); err != nil {
		m.Err = err
		return m, nil
	}
	m.Err = nil
	m.Input.Blur()
	m.Spinner = NewSplash(SpinnerConfig())
	return m, tea.Batch(m.Spinner.Init(), m.generate(text))
}

// generate lays out text off the update loop and holds the result until
// MinDelay has passed.
func (m AppModel) generate(text string) tea.Cmd {
	engine, delay := m.Engine, m.MinDelay
	return func() tea.Msg {
		start := time.Now()
		scene := engine.Generate(text)
		if rest := delay - time.Since(start); rest > 0 {
			time.Sleep(rest)
		}
		return msgGenerated{scene: scene}
	}
}

// visibleScene is the full scene, or only the selected constellation.
func (m AppModel) visibleScene() sky.Scene {
	scene := m.Session.Scene()
	if p, ok := m.Session.Selected(); ok {
		if iso, err := scene.Isolate(p); err == nil {
			return iso
		}
	}
	return scene
}

func (m AppModel) size() (int, int) {
	w, h := m.Width, m.Height
	if w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// View renders the current state.
func (m AppModel) View() string {
	switch m.Session.State() {
	case sky.StateGenerating:
		return m.viewGenerating()
	case sky.StateResults:
		return m.viewResults()
	}
	return m.viewInput()
}

func (m AppModel) viewInput() string {
	parts := []string{
		styleTitle.Render("nightsky") + styleHelp.Render("  write something, then watch it become stars"),
		styleInputFrame.Render(m.Input.View()),
	}
	if m.Err != nil {
		parts = append(parts, m.errorLine())
	}
	parts = append(parts, m.Help.ShortHelpView(m.Keys.inputHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m AppModel) viewGenerating() string {
	w, h := m.size()
	n := len(sky.SplitParagraphs(m.Session.Text()))
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.Spinner.View(),
		styleHelp.Render(fmt.Sprintf("charting %d constellation(s)…", n)),
	)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, body)
}

func (m AppModel) viewResults() string {
	w, h := m.size()
	skyH := max(8, h-6)
	// Cells are about twice as tall as wide.
	skyW := max(16, min(2*skyH, w-listWidth-4))

	view := NewSkyView(skyW, skyH)
	view.Background = m.Background
	canvas := view.Render(m.visibleScene())

	side := []string{m.renderParagraphList()}
	if m.ShowLegend {
		side = append(side, "", renderLegend())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, "  ", lipgloss.JoinVertical(lipgloss.Left, side...))

	scene := m.Session.Scene()
	header := styleTitle.Render("nightsky") + styleHelp.Render(fmt.Sprintf("  %d star(s) in %d constellation(s)", len(scene.Stars), len(scene.Paragraphs)))
	parts := []string{header, body}
	if m.Err != nil {
		parts = append(parts, m.errorLine())
	}
	parts = append(parts, m.Help.ShortHelpView(m.Keys.resultsHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m AppModel) renderParagraphList() string {
	scene := m.Session.Scene()
	if len(scene.Paragraphs) == 0 {
		return styleRowNormal.Render("(no constellations)")
	}
	sel, hasSel := m.Session.Selected()
	rows := make([]string, 0, len(scene.Paragraphs))
	for i, p := range scene.Paragraphs {
		text := fmt.Sprintf("%-5s %s", sky.Roman(i+1), firstWords(p, listWidth-8))
		style := styleRowNormal
		switch {
		case hasSel && sel == i:
			style = styleRowIsolated
		case i == m.Cursor:
			style = styleRowSelected
		}
		prefix := " "
		if i == m.Cursor {
			prefix = styleSelectionIndicator.Render(selectionIndicator)
		}
		rows = append(rows, prefix+" "+style.Render(text))
	}
	return strings.Join(rows, "\n")
}

func (m AppModel) errorLine() string {
	msg := m.Err.Error()
	if errors.Is(m.Err, sky.ErrEmptyInput) {
		msg = "nothing to chart yet: type some text first"
	}
	return styleError.Render("✗ " + msg)
}

// firstWords truncates s to n runes on a word boundary where possible.
func firstWords(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	cut := string(r[:n-1])
	if i := strings.LastIndexByte(cut, ' '); i > n/2 {
		cut = cut[:i]
	}
	return cut + "…"
}
