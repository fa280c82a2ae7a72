package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorDanger  = lipgloss.Color("#FF5F5F")
	ColorMuted   = lipgloss.Color("#626262")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#DDDDDD"))

	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Width(30)

	DetailValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	InsightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AFAFFF")).
			PaddingLeft(2)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	FieldLabelStyle = lipgloss.NewStyle().
			Width(28)
)
