package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/gestures/pkg/gesture"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ActionStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)
)

// Direction styles
var (
	AbsoluteStyle = lipgloss.NewStyle().
			Foreground(AbsoluteColor)

	RelativeStyle = lipgloss.NewStyle().
			Foreground(RelativeColor)
)

// DirectionStyle returns the style for d's branch.
func DirectionStyle(d gesture.Direction) lipgloss.Style {
	if d.IsAbsolute() {
		return AbsoluteStyle
	}
	return RelativeStyle
}

// Column pads s to width cells.
func Column(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
