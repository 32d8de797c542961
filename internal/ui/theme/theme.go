// Package theme holds the terminal styles used to print reports.
package theme

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/cogscreen/internal/risk"
)

// Color palette: calm clinical tones
var (
	Primary  = lipgloss.Color("#6366F1") // Indigo
	Low      = lipgloss.Color("#22C55E") // Green
	Moderate = lipgloss.Color("#F59E0B") // Amber
	High     = lipgloss.Color("#F43F5E") // Rose
	Text     = lipgloss.Color("#F8FAFC") // White
	TextDim  = lipgloss.Color("#94A3B8") // Slate
	Border   = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Underline(true)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// Bar glyphs.
const (
	barFilled = "█"
	barEmpty  = "░"
)

// RiskColor returns the color of a risk tier.
func RiskColor(l risk.Level) lipgloss.Style {
	c := TextDim
	switch l {
	case risk.LevelLow:
		c = Low
	case risk.LevelModerate:
		c = Moderate
	case risk.LevelHigh:
		c = High
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// ScoreStyle colors a 0..100 score by the tier it would fall in.
func ScoreStyle(score float64, th risk.Thresholds) lipgloss.Style {
	return RiskColor(risk.Classify(int(math.Round(score)), th))
}

// BarCells returns how many of width cells a 0..100 score fills.
func BarCells(score float64, width int) int {
	if width <= 0 {
		return 0
	}
	score = math.Max(0, math.Min(100, score))
	return int(math.Round(score / 100 * float64(width)))
}

// Bar renders a horizontal score bar.
func Bar(score float64, width int, th risk.Thresholds) string {
	n := BarCells(score, width)
	filled := ScoreStyle(score, th).Render(strings.Repeat(barFilled, n))
	empty := lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat(barEmpty, max(width-n, 0)))
	return filled + empty
}

// PlainBar renders a score bar without color.
func PlainBar(score float64, width int) string {
	n := BarCells(score, width)
	return strings.Repeat(barFilled, n) + strings.Repeat(barEmpty, max(width-n, 0))
}
