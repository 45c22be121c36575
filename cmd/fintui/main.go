package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/TAnomaly/Fintech-TUI/internal/config"
	"github.com/TAnomaly/Fintech-TUI/internal/marketdata"
	"github.com/TAnomaly/Fintech-TUI/internal/tui"
	"github.com/TAnomaly/Fintech-TUI/internal/util"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	symbol := flag.String("symbol", "", "startup ticker symbol (overrides config)")
	flag.Parse()

	// .env is optional; deployments can set the environment directly.
	godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *symbol != "" {
		cfg.Dashboard.Symbol = *symbol
	}

	logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	var opts []marketdata.Option
	if cfg.AlphaVantage.BaseURL != "" {
		opts = append(opts, marketdata.WithBaseURL(cfg.AlphaVantage.BaseURL))
	}
	client := marketdata.NewClient(cfg.AlphaVantage.APIKey, opts...)

	model := tui.New(client, tui.Options{
		Symbol:      cfg.Dashboard.Symbol,
		HistoryDays: cfg.Dashboard.HistoryDays,
		MAWindow:    cfg.Dashboard.MAWindow,
		Refresh:     cfg.Dashboard.RefreshInterval(),
		Logger:      logger,
	})

	// The alt-screen program restores the terminal on every exit path,
	// including panics inside Update or View.
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("running dashboard", "error", err)
		fmt.Fprintln(os.Stderr, "fintui:", err)
		os.Exit(1)
	}
}
