package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jwulff/callboard/internal/dashboard"
)

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#FF0000")
	ColorOrange  = lipgloss.Color("#FFA500")
	ColorGreen   = lipgloss.Color("#00C853")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorBrand   = lipgloss.Color("#007CBA")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorMagenta = lipgloss.Color("#FF00FF")

	// Stat card accents.
	ColorSLA       = lipgloss.Color("#2ECC71")
	ColorLatency   = lipgloss.Color("#F1C40F")
	ColorSentiment = lipgloss.Color("#3498DB")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBrand)

	StatusLabelStyle = lipgloss.NewStyle().
				Bold(true)

	StatusActiveStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	LangActiveStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorBrand).
			Padding(0, 1)

	LangInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorWhite).
				Background(ColorGray).
				Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	CardValueStyle = lipgloss.NewStyle().
			Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)

	IntentStyle = lipgloss.NewStyle().
			Foreground(ColorBrand)

	BarStyle = lipgloss.NewStyle().
			Foreground(ColorBrand)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorBrand).
				Bold(true).
				Underline(true)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)
)

// AccentColor maps an urgency accent onto the terminal palette.
func AccentColor(c dashboard.Color) lipgloss.Color {
	switch c {
	case dashboard.ColorRed:
		return ColorRed
	case dashboard.ColorOrange:
		return ColorOrange
	default:
		return ColorGreen
	}
}
