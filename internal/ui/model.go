// Package ui provides the terminal user interface for the expenses
// application. This file defines the main application model.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/VarunSharma3520/moneyinput"
	"github.com/VarunSharma3520/moneyinput/internal/config"
	"github.com/VarunSharma3520/moneyinput/internal/logger"
	"github.com/VarunSharma3520/moneyinput/internal/store"
)

// focusArea identifies which form field has keyboard focus.
type focusArea int

const (
	focusNote focusArea = iota
	focusAmount
	focusBudget

	fieldCount = 3
)

// statusExpiredMsg clears the status line. It carries the time the status
// was set so a tick scheduled for an old status can't wipe a newer one.
type statusExpiredMsg struct {
	at time.Time
}

// Model is the application state: the entry form, the recorded expenses,
// and the plumbing they need.
type Model struct {
	note   textinput.Model
	amount moneyinput.Model
	budget moneyinput.Model
	focus  focusArea

	expenses []store.Expense
	// pending mirrors the amount field through its OnChange callback.
	pending float64

	store     *store.Store
	cfg       config.Config
	cfgPath   string
	log       *logger.Logger
	formatter *moneyinput.LocaleFormatter

	status    string
	statusSet time.Time
}

// InitialModel builds the application model from its dependencies and loads
// the existing ledger. The note field starts focused.
func InitialModel(cfg config.Config, cfgPath string, st *store.Store, lg *logger.Logger) *Model {
	expenses, err := st.Load()
	if err != nil {
		lg.Error("failed to load ledger", err, nil)
		expenses = nil
	}

	m := &Model{
		note:      newNoteInput(),
		amount:    newAmountInput(cfg),
		budget:    newBudgetInput(cfg),
		focus:     focusNote,
		expenses:  expenses,
		store:     st,
		cfg:       cfg,
		cfgPath:   cfgPath,
		log:       lg,
		formatter: moneyinput.NewLocaleFormatter(language.English),
	}

	m.amount.OnChange = func(v float64) {
		m.pending = v
	}
	m.amount.OnBlur = func() {
		lg.Debug("amount field blurred", map[string]interface{}{"value": m.pending})
	}

	return m
}

// setStatus shows msg in the status line and schedules its removal.
func (m *Model) setStatus(msg string) tea.Cmd {
	at := time.Now()
	m.status = msg
	m.statusSet = at
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusExpiredMsg{at: at}
	})
}

// fmtAmount renders v the same way the inputs render their settled values.
func (m *Model) fmtAmount(v float64) string {
	return m.formatter.Format(v, moneyinput.FormatOptions{
		Currency:   m.cfg.Currency.Code,
		ShowCents:  m.cfg.Currency.ShowCents,
		ShowSymbol: m.cfg.Currency.ShowSymbol,
	})
}
