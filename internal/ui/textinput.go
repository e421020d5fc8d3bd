// Package ui provides the terminal user interface for the expenses
// application. It uses the Bubble Tea framework for building interactive
// terminal applications.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/VarunSharma3520/moneyinput"
	"github.com/VarunSharma3520/moneyinput/internal/config"
)

// promptStyle matches the field prompts to the application's theme.
var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(config.MainColorForeground))

// newNoteInput creates and configures the text input for the expense note.
// It sets up a text input field with a placeholder, character limit, and
// styling that matches the application's theme.
//
// Returns:
//   - textinput.Model: A configured text input model ready for use in the UI
//
// Example:
//   input := newNoteInput()
//   // Use in your Bubble Tea model's Update method
func newNoteInput() textinput.Model {
	ti := textinput.New()

	// Configure input field properties
	ti.Placeholder = "What was it for?" // Placeholder text when input is empty
	ti.Focus()                          // Automatically focus the input field
	ti.CharLimit = 64                   // Maximum number of characters allowed
	ti.Width = 32                       // Initial width of the input field

	// Apply styling from the application's theme
	ti.PromptStyle = promptStyle

	return ti
}

// newAmountInput creates the money input for the expense amount, bound to
// the configured currency and the ledger's single-expense limit.
func newAmountInput(cfg config.Config) moneyinput.Model {
	mi := moneyinput.New()
	mi.Currency = cfg.Currency.Code
	mi.ShowCents = cfg.Currency.ShowCents
	mi.ShowSymbol = cfg.Currency.ShowSymbol
	mi.MaxValue = cfg.Ledger.MaxAmount
	mi.Width = 20
	mi.PromptStyle = promptStyle
	return mi
}

// newBudgetInput creates the money input for the monthly budget, seeded
// with the configured value.
func newBudgetInput(cfg config.Config) moneyinput.Model {
	mi := moneyinput.New()
	mi.Currency = cfg.Currency.Code
	mi.ShowSymbol = cfg.Currency.ShowSymbol
	mi.MaxValue = 100000000
	mi.Placeholder = "Monthly budget"
	mi.Width = 20
	mi.PromptStyle = promptStyle
	mi.SetValue(cfg.Ledger.MonthlyBudget)
	return mi
}
