package ui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/VarunSharma3520/moneyinput/internal/store"
)

// recentCount is how many ledger entries the form shows below the fields.
const recentCount = 5

// renderRecent renders the newest ledger entries, most recent first.
func (m *Model) renderRecent() string {
	if len(m.expenses) == 0 {
		return mutedStyle.Render("No expenses yet.")
	}

	var sb strings.Builder
	start := len(m.expenses) - recentCount
	if start < 0 {
		start = 0
	}
	for i := len(m.expenses) - 1; i >= start; i-- {
		e := m.expenses[i]
		sb.WriteString(fmt.Sprintf("%s  %s %s\n",
			amountStyle.Render(m.fmtAmount(e.Amount)),
			e.Note,
			mutedStyle.Render(e.Time.Format("Jan 2")),
		))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderSummary renders the running total against the monthly budget. The
// subtraction goes through decimal so the remainder is exact.
func (m *Model) renderSummary() string {
	total := store.Total(m.expenses)
	line := fmt.Sprintf("Spent %s", amountStyle.Render(m.fmtAmount(total)))

	budget := m.budget.Value()
	if budget <= 0 {
		return line
	}

	remaining := decimal.NewFromFloat(budget).Sub(decimal.NewFromFloat(total)).InexactFloat64()
	if remaining < 0 {
		over := warnStyle.Render(fmt.Sprintf("%s over budget", m.fmtAmount(-remaining)))
		return fmt.Sprintf("%s • %s", line, over)
	}
	return fmt.Sprintf("%s • %s left of %s", line, m.fmtAmount(remaining), m.fmtAmount(budget))
}

// View renders the entry form, the budget summary and the recent entries.
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(labelStyle.Render("Note"))
	sb.WriteString("\n")
	sb.WriteString(m.note.View())
	sb.WriteString("\n\n")

	sb.WriteString(labelStyle.Render("Amount"))
	sb.WriteString("\n")
	sb.WriteString(m.amount.View())
	sb.WriteString("\n\n")

	sb.WriteString(labelStyle.Render("Budget"))
	sb.WriteString("\n")
	sb.WriteString(m.budget.View())
	sb.WriteString("\n\n")

	sb.WriteString(m.renderSummary())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderRecent())

	instructions := helpStyle.Render("Tab: Next field • Enter: Save • Esc: Quit")

	// Show status message if available
	statusBar := ""
	if m.status != "" {
		statusBar = fmt.Sprintf("\n\n%s", statusStyle.Render(m.status))
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n",
		titleStyle.Render("Expenses"),
		sb.String(),
		instructions,
		statusBar,
	)
}
