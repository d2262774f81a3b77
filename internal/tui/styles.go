package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	warningColor = lipgloss.Color("226") // Yellow
	mutedColor   = lipgloss.Color("245") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	statusPendingStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	logStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(successColor).
			Padding(0, 2).
			MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1).
			PaddingLeft(2)
)
