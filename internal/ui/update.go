// Package ui provides the terminal user interface for the expenses
// application. This file handles the update loop and message handling.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VarunSharma3520/moneyinput"
	"github.com/VarunSharma3520/moneyinput/internal/config"
	"github.com/VarunSharma3520/moneyinput/internal/store"
)

// Init starts cursor blinking for the form.
func (m *Model) Init() tea.Cmd {
	return moneyinput.Blink
}

// Update is the main update function. Key presses are dispatched through
// handleKeyMsg; everything else (cursor blinks, the inputs' scheduled cursor
// moves, status expiry) is routed to its owner.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case statusExpiredMsg:
		if msg.at.Equal(m.statusSet) {
			m.status = ""
		}
		return m, nil
	}

	return m, m.forwardAll(msg)
}

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlW:
		return m, tea.Quit

	case tea.KeyTab:
		return m, m.cycleFocus(1)

	case tea.KeyShiftTab:
		return m, m.cycleFocus(-1)

	case tea.KeyEnter:
		return m.handleSubmit()
	}

	// Regular typing goes to whichever field has focus.
	return m, m.forwardToFocused(msg)
}

// cycleFocus blurs the current field and focuses the one delta steps away.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	switch m.focus {
	case focusNote:
		m.note.Blur()
	case focusAmount:
		m.amount.Blur()
	case focusBudget:
		m.budget.Blur()
	}

	m.focus = focusArea((int(m.focus) + delta + fieldCount) % fieldCount)

	switch m.focus {
	case focusNote:
		return m.note.Focus()
	case focusAmount:
		return m.amount.Focus()
	case focusBudget:
		return m.budget.Focus()
	}
	return nil
}

// handleSubmit acts on Enter: the budget field saves the configuration,
// the other fields record an expense.
func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.focus == focusBudget {
		return m.saveBudget()
	}
	return m.recordExpense()
}

// recordExpense appends the pending amount to the ledger and resets the
// form for the next entry.
func (m *Model) recordExpense() (tea.Model, tea.Cmd) {
	if m.pending == 0 {
		return m, m.setStatus("Enter an amount first")
	}

	note := strings.TrimSpace(m.note.Value())
	if note == "" {
		note = "(unlabeled)"
	}

	e := store.NewExpense(note, m.pending, m.cfg.Currency.Code)
	if err := m.store.Append(e); err != nil {
		m.log.Error("failed to record expense", err, map[string]interface{}{
			"amount": e.Amount,
		})
		return m, m.setStatus("Could not save the expense")
	}

	m.log.Info("expense recorded", map[string]interface{}{
		"id":       e.ID,
		"amount":   e.Amount,
		"currency": e.Currency,
	})

	m.expenses = append(m.expenses, e)
	m.pending = 0
	m.amount.SetValue(0)
	m.note.Reset()

	return m, m.setStatus(fmt.Sprintf("Saved %s for %s", m.fmtAmount(e.Amount), e.Note))
}

// saveBudget writes the budget field's settled value back to the config
// file.
func (m *Model) saveBudget() (tea.Model, tea.Cmd) {
	m.cfg.Ledger.MonthlyBudget = m.budget.Value()
	if err := config.Save(m.cfg, m.cfgPath); err != nil {
		m.log.Error("failed to save config", err, nil)
		return m, m.setStatus("Could not save the budget")
	}
	return m, m.setStatus("Budget saved")
}

// forwardToFocused hands msg to the field that currently has focus.
func (m *Model) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusNote:
		m.note, cmd = m.note.Update(msg)
	case focusAmount:
		m.amount, cmd = m.amount.Update(msg)
	case focusBudget:
		m.budget, cmd = m.budget.Update(msg)
	}
	return cmd
}

// forwardAll hands msg to every field. Blink and cursor-move messages know
// which input they belong to.
func (m *Model) forwardAll(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.note, cmd = m.note.Update(msg)
	cmds = append(cmds, cmd)
	m.amount, cmd = m.amount.Update(msg)
	cmds = append(cmds, cmd)
	m.budget, cmd = m.budget.Update(msg)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}
