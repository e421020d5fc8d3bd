// Package store persists recorded expenses as a JSON ledger file inside the
// application's data directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerFile is the name of the JSON file inside the data directory.
const ledgerFile = "ledger.json"

// Expense is a single recorded amount.
type Expense struct {
	ID       string    `json:"id"`       // Random identifier assigned at creation
	Note     string    `json:"note"`     // What the money went to
	Amount   float64   `json:"amount"`   // Settled amount from the input
	Currency string    `json:"currency"` // ISO 4217 code the amount was entered in
	Time     time.Time `json:"time"`     // When the expense was recorded
}

// Ledger is the on-disk shape of the expense file.
type Ledger struct {
	Expenses []Expense `json:"expenses"`
}

// Store reads and appends expenses under one data directory.
type Store struct {
	path string
}

// New validates the data directory and returns a store for it. The directory
// is created if it doesn't exist; an existing path must be a writable
// directory.
func New(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return &Store{path: filepath.Join(dir, ledgerFile)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path exists but is not a directory: %s", dir)
	}
	if info.Mode().Perm()&0200 == 0 {
		return nil, fmt.Errorf("insufficient permissions to write to data directory: %s", dir)
	}
	return &Store{path: filepath.Join(dir, ledgerFile)}, nil
}

// NewExpense builds an expense with a fresh ID and the current time.
func NewExpense(note string, amount float64, currency string) Expense {
	return Expense{
		ID:       uuid.NewString(),
		Note:     note,
		Amount:   amount,
		Currency: currency,
		Time:     time.Now(),
	}
}

// Load reads every recorded expense. A ledger that doesn't exist yet is
// simply empty.
func (s *Store) Load() ([]Expense, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	var ledger Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("failed to parse ledger: %w", err)
	}
	return ledger.Expenses, nil
}

// Append adds e to the ledger, reading the existing file first so concurrent
// runs of the program don't clobber each other's whole history.
func (s *Store) Append(e Expense) error {
	expenses, err := s.Load()
	if err != nil {
		return err
	}

	ledger := Ledger{Expenses: append(expenses, e)}
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// Total sums the expenses exactly. Going through decimals keeps repeated
// cent amounts from drifting the way accumulated float additions do.
func Total(expenses []Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(decimal.NewFromFloat(e.Amount))
	}
	return sum.InexactFloat64()
}
