package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VarunSharma3520/moneyinput/internal/config"
	"github.com/VarunSharma3520/moneyinput/internal/logger"
	"github.com/VarunSharma3520/moneyinput/internal/store"
	"github.com/VarunSharma3520/moneyinput/internal/ui"
)

func main() {
	// Load the config, falling back to defaults when there is none yet
	cfgPath := config.DefaultPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not read config at %s: %v (using defaults)", cfgPath, err)
		cfg = config.DefaultConfig()
	}

	// Ensure the ledger directory exists before starting UI
	dataDir := config.DataDir(cfg)
	st, err := store.New(dataDir)
	if err != nil {
		log.Fatalf("Failed to open ledger directory: %v", err)
	}

	// Initialize logger
	logPath := filepath.Join(dataDir, "expenses.log")
	appLogger, err := logger.NewLogger(logPath)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.Info("starting expenses", map[string]interface{}{
		"config":   cfgPath,
		"data_dir": dataDir,
		"currency": cfg.Currency.Code,
	})

	p := tea.NewProgram(
		ui.InitialModel(cfg, cfgPath, st, appLogger),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stdout),
	)

	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
