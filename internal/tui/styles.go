package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	headingStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	statusStyle      = lipgloss.NewStyle().Italic(true)
	labelStyle       = lipgloss.NewStyle().Faint(true)
	boxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Border(lipgloss.HiddenBorder()).Padding(0, 1)
	errorStyle       = lipgloss.NewStyle()
)
