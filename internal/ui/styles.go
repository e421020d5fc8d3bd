// Package ui provides the terminal user interface for the expenses
// application. This file contains style definitions for various UI elements
// using the lipgloss library.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/VarunSharma3520/moneyinput/internal/config"
)

// Global style definitions for consistent theming across the application.
// These styles are used to maintain a consistent look and feel.
var (
	// titleStyle defines the styling for the application title/header.
	// It uses the application's main colors with bold text and padding.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(config.MainColorBackground)).
			Background(lipgloss.Color(config.MainColorForeground)).
			PaddingRight(4).
			PaddingLeft(4).
			AlignVertical(lipgloss.Center)

	// labelStyle defines the styling for the field labels above the inputs.
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(config.MainColorForeground))

	// helpStyle defines the styling for help/instruction text.
	// It uses a muted version of the background color with italic text.
	helpStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(config.MainColorBackgroundMute))

	// statusStyle defines the styling for status messages
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Italic(true)

	// amountStyle defines the styling for formatted amounts
	amountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(config.AccentColor))

	// warnStyle defines the styling for over-budget warnings
	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(config.WarnColor))

	// mutedStyle defines the styling for secondary text such as dates
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(config.MainColorBackgroundMute))
)
