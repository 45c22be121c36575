// Package tui owns the dashboard session and its update loop: current
// symbol, current price series, current error state, and the policy for
// what happens to displayed data when a refresh fails.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/TAnomaly/Fintech-TUI/internal/marketdata"
	"github.com/TAnomaly/Fintech-TUI/internal/series"
)

// noDataMsg is the error text shown when a fetch succeeds but yields no
// usable price points.
const noDataMsg = "no data found for this symbol"

// Fetcher retrieves a daily close series for a symbol. Satisfied by
// *marketdata.Client.
type Fetcher interface {
	FetchDaily(ctx context.Context, symbol string, days int) (series.PriceSeries, error)
}

// Session is the dashboard's mutable state. Series always reflects the
// most recent successful non-empty fetch; a later failed or empty fetch
// only sets LastError and never clears the series.
type Session struct {
	Symbol    string
	Series    series.PriceSeries
	LastError string
}

// mode is the operating phase of the control loop.
type mode int

const (
	modeDisplay mode = iota
	modePrompt
)

// Options configure the dashboard model.
type Options struct {
	Symbol      string
	HistoryDays int
	MAWindow    int
	Refresh     time.Duration
	Logger      *slog.Logger
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	session  Session
	mode     mode
	fetching bool
	pending  string // symbol of the in-flight fetch

	input textinput.Model
	spin  spinner.Model

	width, height int
	ready         bool

	fetcher  Fetcher
	days     int
	maWindow int
	refresh  time.Duration
	logger   *slog.Logger
}

// New creates the dashboard model. The initial fetch for the configured
// symbol is issued from Init; the model starts with it marked in flight
// so the one-fetch-at-a-time guard covers the startup path too.
func New(fetcher Fetcher, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "ticker symbol"
	input.CharLimit = 12
	input.Width = 20

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	symbol := strings.ToUpper(opts.Symbol)

	return Model{
		session:  Session{Symbol: symbol},
		fetching: true,
		pending:  symbol,
		input:    input,
		spin:     spin,
		fetcher:  fetcher,
		days:     opts.HistoryDays,
		maWindow: opts.MAWindow,
		refresh:  opts.Refresh,
		logger:   logger,
	}
}

// Session exposes the current session state.
func (m Model) Session() Session { return m.session }

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd starts a background fetch. The closure captures everything it
// needs so the command never touches the model.
func (m Model) fetchCmd(symbol string) tea.Cmd {
	fetcher := m.fetcher
	days := m.days
	return func() tea.Msg {
		s, err := fetcher.FetchDaily(context.Background(), symbol, days)
		return fetchResultMsg{symbol: symbol, series: s, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	m.logger.Info("starting dashboard", "symbol", m.session.Symbol, "days", m.days)
	return tea.Batch(m.tickCmd(), m.spin.Tick, m.fetchCmd(m.session.Symbol))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modePrompt {
			return m.updatePrompt(msg)
		}
		switch msg.String() {
		case "q", "Q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			// One fetch at a time; ignore the prompt until it lands.
			if m.fetching {
				return m, nil
			}
			m.mode = modePrompt
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m, m.tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case fetchResultMsg:
		// Only the result of the in-flight fetch counts; anything else
		// is stale and must not clobber a newer series.
		if !m.fetching || msg.symbol != m.pending {
			return m, nil
		}
		m.fetching = false
		m.pending = ""
		m.applyFetchResult(msg)
		return m, nil
	}

	return m, nil
}

// updatePrompt handles keys while collecting a new symbol.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.mode = modeDisplay
		m.input.Blur()
		return m, nil
	case "enter":
		symbol := strings.ToUpper(strings.TrimSpace(m.input.Value()))
		m.mode = modeDisplay
		m.input.Blur()
		if symbol == "" {
			// Nothing to act on; the session stays untouched.
			return m, nil
		}
		m.fetching = true
		m.pending = symbol
		m.logger.Info("fetching series", "symbol", symbol)
		return m, m.fetchCmd(symbol)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyFetchResult enforces the update policy: only a successful,
// non-empty fetch replaces the displayed series; failures and empty
// results leave the prior symbol and series in place and surface as an
// error message.
func (m *Model) applyFetchResult(msg fetchResultMsg) {
	switch {
	case msg.err == nil && len(msg.series) > 0:
		m.session.Symbol = msg.symbol
		m.session.Series = msg.series
		m.session.LastError = ""
		m.logger.Info("series updated", "symbol", msg.symbol, "closes", len(msg.series))
	case errors.Is(msg.err, marketdata.ErrNoData) || msg.err == nil:
		m.session.LastError = noDataMsg
		m.logger.Warn("fetch returned no data", "symbol", msg.symbol)
	default:
		m.session.LastError = msg.err.Error()
		m.logger.Warn("fetch failed", "symbol", msg.symbol, "error", msg.err)
	}
}
