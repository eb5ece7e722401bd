package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/nightsky/internal/pos"
)

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#7DB9DE") // Pale blue, primary accent
	colorAccent      = lipgloss.Color("#F4C842") // Gold, numerals and selection
	colorDanger      = lipgloss.Color("#FF5252") // Red, errors
	colorMuted       = lipgloss.Color("#636363") // Gray, de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray, normal text
	colorBrightWhite = lipgloss.Color("#FFFFFF")
	colorSky         = lipgloss.Color("#0B1026") // Night background
	colorEdge        = lipgloss.Color("#3A4668") // Constellation lines
	colorBackground  = lipgloss.Color("#4A5578") // Decorative stars
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleRowIsolated = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleNumeral = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleEdge = lipgloss.NewStyle().
			Foreground(colorEdge)

	styleBackgroundStar = lipgloss.NewStyle().
				Foreground(colorBackground)

	styleSkyFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorEdge)

	styleInputFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

// categoryStyles maps each part of speech to its star color.
var categoryStyles = func() map[pos.Category]lipgloss.Style {
	m := make(map[pos.Category]lipgloss.Style)
	for _, c := range pos.Categories() {
		m[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(pos.Color(c)))
	}
	return m
}()

// starStyle returns the style for a star of the given color.
func starStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
