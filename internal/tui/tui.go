// Package tui implements the interactive live-analysis terminal UI.
// Cards are typed as they appear at the table; every committed change to
// the card list re-runs the analyzer and refreshes the report.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/pokersim/analysis"
	"github.com/lox/pokersim/equity"
	"github.com/lox/pokersim/poker"
)

// Options configures the live analyzer.
type Options struct {
	Logger    *log.Logger
	Opponents int
	Trials    int
	Seed      *int64
}

// Model is the Bubble Tea model for the live analyzer
type Model struct {
	logger *log.Logger

	// UI components
	input textinput.Model

	// Analysis parameters
	opponents int
	trials    int
	seed      *int64

	// State
	report        analysis.LiveReport
	err           error
	lastCommitted string
	seq           int
	doneSeq       int
	elapsed       time.Duration
	quitting      bool

	// Dimensions
	width  int
	height int
}

// analysisMsg delivers a finished analysis back to the update loop.
type analysisMsg struct {
	seq     int
	report  analysis.LiveReport
	err     error
	elapsed time.Duration
}

// New creates a live analyzer model
func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if opts.Opponents <= 0 {
		opts.Opponents = 1
	}
	if opts.Trials <= 0 {
		opts.Trials = analysis.DefaultLiveTrials
	}

	ti := textinput.New()
	ti.Placeholder = "Enter cards as they appear: hole first, then the board (e.g. As Kh Qd Jc Ts)"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 70
	ti.Prompt = "cards> "
	ti.PromptStyle = HandInfoStyle
	ti.TextStyle = BlackCardStyle

	return &Model{
		logger:    logger.WithPrefix("tui"),
		input:     ti,
		opponents: opts.Opponents,
		trials:    opts.Trials,
		seed:      opts.Seed,
	}
}

// Run starts the interactive analyzer and blocks until the user quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case analysisMsg:
		if msg.seq != m.seq {
			// Superseded by newer input, drop it
			return m, nil
		}
		m.doneSeq = msg.seq
		m.elapsed = msg.elapsed
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.report = msg.report
		m.err = nil
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			// Re-sample the current cards
			m.lastCommitted = ""
			return m, m.refresh()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if refresh := m.refresh(); refresh != nil {
		return m, tea.Batch(cmd, refresh)
	}
	return m, cmd
}

// refresh re-runs analysis when the committed card list changed. Tokens
// still being typed leave the previous report in place.
func (m *Model) refresh() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.lastCommitted = ""
		m.report = analysis.LiveReport{}
		m.err = nil
		return nil
	}

	cards, complete, err := committedCards(value)
	if err != nil {
		m.err = err
		return nil
	}
	if !complete {
		return nil
	}
	m.err = nil

	canonical := poker.FormatCards(cards)
	if canonical == m.lastCommitted {
		return nil
	}
	m.lastCommitted = canonical
	m.seq++
	return m.analyzeCmd(cards, m.seq)
}

// committedCards parses the input once every token is a full two-character
// card. A short trailing token means the user is mid-keystroke.
func committedCards(s string) ([]poker.Card, bool, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	for _, f := range fields {
		if len(f) != 2 {
			return nil, false, nil
		}
	}
	cards, err := poker.ParseCards(s)
	if err != nil {
		return nil, false, err
	}
	return cards, true, nil
}

func (m *Model) analyzeCmd(cards []poker.Card, seq int) tea.Cmd {
	req := analysis.LiveRequest{
		Cards:     cards,
		Opponents: m.opponents,
		Trials:    m.trials,
		Seed:      m.seed,
	}
	logger := m.logger
	return func() tea.Msg {
		start := time.Now()
		report, err := analysis.Live(context.Background(), req)
		elapsed := time.Since(start)
		if err != nil {
			logger.Debug("live analysis failed", "cards", poker.FormatCards(cards), "error", err)
		} else {
			logger.Debug("live analysis", "cards", poker.FormatCards(cards), "elapsed", elapsed)
		}
		return analysisMsg{seq: seq, report: report, err: err, elapsed: elapsed}
	}
}

// View renders the analyzer
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" pokersim live ") + "\n\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(m.renderStatus() + "\n")

	if m.report.Known > 0 {
		b.WriteString(m.renderReport())
	}

	b.WriteString("\n" + InfoStyle.Render("Enter to re-sample, Esc to quit"))
	return b.String()
}

func (m *Model) renderStatus() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.seq != m.doneSeq {
		return InfoStyle.Render("analyzing...")
	}
	if m.report.Distribution.Result.Trials > 0 {
		return InfoStyle.Render(fmt.Sprintf("%d trials vs %d opponent(s) in %s",
			m.report.Distribution.Result.Trials, m.opponents,
			m.elapsed.Truncate(time.Millisecond)))
	}
	return ""
}

func (m *Model) renderReport() string {
	rep := m.report
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(HandInfoStyle.Render("Hole: ") + m.formatCards(rep.Hole))
	if len(rep.Board) > 0 {
		b.WriteString("  " + HandInfoStyle.Render("Board: ") + m.formatCards(rep.Board))
	}
	b.WriteString("\n")

	if rep.Message != "" {
		b.WriteString("\n" + InfoStyle.Render(rep.Message) + "\n")
		return b.String()
	}

	res := rep.Distribution.Result
	b.WriteString(fmt.Sprintf("\n%s %s  %s %s  %s %s  %s %s\n",
		SuccessStyle.Render("Win"), percent(res.WinRate()),
		InfoStyle.Render("Tie"), percent(res.TieRate()),
		ErrorStyle.Render("Loss"), percent(res.LossRate()),
		HandInfoStyle.Render("Equity"), percent(res.Equity())))

	if rep.Current.HasHand {
		b.WriteString(HandInfoStyle.Render("Current: ") + rep.Current.String() + "\n")
	}
	if len(rep.Draws) > 0 {
		parts := make([]string, len(rep.Draws))
		for i, d := range rep.Draws {
			parts[i] = d.String()
		}
		b.WriteString(HandInfoStyle.Render("Draws: ") + strings.Join(parts, ", ") + "\n")
	}
	if len(rep.BeatenBy) > 0 {
		parts := make([]string, len(rep.BeatenBy))
		for i, c := range rep.BeatenBy {
			parts[i] = c.String()
		}
		b.WriteString(HandInfoStyle.Render("Beaten by: ") + strings.Join(parts, ", ") + "\n")
	}

	b.WriteString("\n" + m.renderDistribution(rep.Distribution))
	if rep.Strategy != "" {
		b.WriteString("\n" + StrategyStyle.Render(rep.Strategy) + "\n")
	}
	return b.String()
}

// renderDistribution lists sampled hand categories strongest first.
func (m *Model) renderDistribution(dist equity.DistributionReport) string {
	var b strings.Builder
	for i := int(poker.StraightFlush); i >= 0; i-- {
		cat := poker.HandCategory(i)
		count := dist.Counts[cat]
		if count == 0 {
			continue
		}
		line := fmt.Sprintf("%-16s %6.1f%%", cat.String(), dist.Frequency(cat)*100)
		if cat == dist.Best {
			b.WriteString(SuccessStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatCards formats cards with colors
func (m *Model) formatCards(cards []poker.Card) string {
	if len(cards) == 0 {
		return ""
	}

	var formatted []string
	for _, card := range cards {
		suit := card.Suit()
		if suit == poker.Hearts || suit == poker.Diamonds {
			formatted = append(formatted, RedCardStyle.Render(card.String()))
		} else {
			formatted = append(formatted, BlackCardStyle.Render(card.String()))
		}
	}

	return "[" + strings.Join(formatted, " ") + "]"
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
