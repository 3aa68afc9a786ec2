package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
var (
	salmonPink  = lipgloss.Color("#FFB3BA") // primary accent
	mintGreen   = lipgloss.Color("#A8E6CF") // badges and success
	mutedGray   = lipgloss.Color("#6B7280") // secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // primary text
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Background(salmonPink).
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedGray).
			Padding(0, 1)

	hoverCardStyle = cardStyle.
			BorderForeground(salmonPink)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Bold(true)

	cardDescStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	badgeStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mintGreen).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(salmonPink)
)
