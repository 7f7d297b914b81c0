package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passpredict/internal/chart"
)

// Color palette
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	// Outcome colours match the charts served by the web UI.
	Fail = lipgloss.Color(chart.FailColor)
	Pass = lipgloss.Color(chart.PassColor)
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Fail).
			Bold(true)
)

// States
var (
	Focused = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unfocused = lipgloss.NewStyle().
			Foreground(Text)

	PassVerdict = lipgloss.NewStyle().
			Foreground(Pass).
			Bold(true)

	FailVerdict = lipgloss.NewStyle().
			Foreground(Fail).
			Bold(true)
)

// Components
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	SliderFilled = lipgloss.NewStyle().
			Background(Secondary)

	SliderEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	TabActive = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 2)
)
