package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iamasit07/4-in-a-row-console/internal/domain"
	"github.com/iamasit07/4-in-a-row-console/internal/service/bot"
	"github.com/iamasit07/4-in-a-row-console/internal/service/game"
)

const (
	ModePlayer = "player"
	ModeBot    = "bot"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	xStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	oStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type Options struct {
	Mode      string
	BotLevel  bot.Level
	BotSymbol domain.Cell
	BotOpts   []bot.Option
	Delay     time.Duration
}

// botMoveMsg carries the bot's answer back into Update. moveCount pins it to
// the position it was computed for.
type botMoveMsg struct {
	decision  bot.Decision
	err       error
	moveCount int
	gameID    string
}

// Model is a bubbletea front-end over a single game session
type Model struct {
	opts     Options
	session  *game.Session
	bot      *bot.Heuristic
	botName  string
	cursor   int
	status   string
	thinking bool
	err      error
}

func New(opts Options) (Model, error) {
	if opts.Mode == "" {
		opts.Mode = ModeBot
	}
	if !opts.BotSymbol.IsPlayer() {
		opts.BotSymbol = domain.PlayerO
	}

	m := Model{opts: opts, cursor: domain.Columns / 2}

	switch opts.Mode {
	case ModePlayer:
	case ModeBot:
		h, err := bot.NewBot(opts.BotLevel, opts.BotSymbol, opts.BotOpts...)
		if err != nil {
			return Model{}, err
		}
		m.bot = h
		m.botName = bot.GetBotName(opts.BotLevel)
	default:
		return Model{}, fmt.Errorf("unknown mode %q", opts.Mode)
	}

	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run starts the program and blocks until the user quits or ctx ends
func Run(ctx context.Context, opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// seat only describes a side, moves come in through Update
type seat struct {
	name  string
	isBot bool
}

func (s seat) Name() string { return s.name }
func (s seat) IsBot() bool  { return s.isBot }
func (s seat) NextMove(context.Context, game.View) (int, error) {
	return 0, errors.New("moves are driven by key presses")
}

func (m *Model) reset() error {
	playerX := seat{name: "Player X"}
	playerO := seat{name: "Player O"}
	if m.bot != nil {
		botSeat := seat{name: m.botName, isBot: true}
		if m.opts.BotSymbol == domain.PlayerX {
			playerX = botSeat
		} else {
			playerO = botSeat
		}
	}

	session, err := game.NewSession(playerX, playerO, nil)
	if err != nil {
		return err
	}
	m.session = session
	m.status = ""
	m.thinking = false
	m.err = nil
	return nil
}

func (m Model) botToMove() bool {
	return m.bot != nil &&
		!m.session.Game.IsFinished() &&
		m.session.Game.Board.ActiveSymbol() == m.opts.BotSymbol
}

func (m Model) botTurn() tea.Cmd {
	view := m.session.View()
	h := m.bot
	return tea.Tick(m.opts.Delay, func(time.Time) tea.Msg {
		d, err := h.Decide(view.Grid)
		return botMoveMsg{decision: d, err: err, moveCount: view.MoveCount, gameID: view.GameID}
	})
}

func (m Model) Init() tea.Cmd {
	if m.botToMove() {
		return m.botTurn()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case botMoveMsg:
		return m.handleBotMove(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		if m.session.Game.IsFinished() || m.err != nil {
			if err := m.reset(); err != nil {
				m.err = err
				return m, nil
			}
			if m.botToMove() {
				m.thinking = true
				return m, m.botTurn()
			}
		}
		return m, nil
	}

	if m.session.Game.IsFinished() || m.thinking || m.botToMove() || m.err != nil {
		return m, nil
	}

	switch key {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < domain.Columns-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.drop(m.cursor + 1)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] < byte('1'+domain.Columns) {
			m.cursor = int(key[0] - '1')
			return m.drop(m.cursor + 1)
		}
	}
	return m, nil
}

func (m Model) drop(column int) (tea.Model, tea.Cmd) {
	if _, err := m.session.Play(column); err != nil {
		if errors.Is(err, domain.ErrColumnFull) {
			m.status = "Column is full, please choose another column."
		} else {
			m.status = err.Error()
		}
		return m, nil
	}
	m.status = ""

	if m.botToMove() {
		m.thinking = true
		return m, m.botTurn()
	}
	return m, nil
}

func (m Model) handleBotMove(msg botMoveMsg) (tea.Model, tea.Cmd) {
	view := m.session.View()
	if msg.gameID != view.GameID || msg.moveCount != view.MoveCount {
		// answer for a position that no longer exists
		return m, nil
	}
	m.thinking = false

	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	if _, err := m.session.Play(msg.decision.Column); err != nil {
		m.err = fmt.Errorf("%w: column %d: %v", game.ErrBotMove, msg.decision.Column, err)
		return m, nil
	}
	m.status = fmt.Sprintf("%s chose column %d", m.botName, msg.decision.Column)
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	view := m.session.View()

	sb.WriteString(titleStyle.Render("Connect 4") + "\n\n")

	for col := 0; col < domain.Columns; col++ {
		if col == m.cursor && !m.session.Game.IsFinished() {
			sb.WriteString("  " + cursorStyle.Render("v") + " ")
		} else {
			sb.WriteString("    ")
		}
	}
	sb.WriteString("\n")

	for _, row := range view.Grid {
		for _, cell := range row {
			sb.WriteString("| " + renderCell(cell) + " ")
		}
		sb.WriteString("|\n")
	}
	for col := 1; col <= domain.Columns; col++ {
		fmt.Fprintf(&sb, "  %d ", col)
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.statusLine(view) + "\n")
	if m.status != "" {
		sb.WriteString(m.status + "\n")
	}
	if m.err != nil {
		sb.WriteString(errStyle.Render("error: "+m.err.Error()) + "\n")
	}

	sb.WriteString("\n" + helpStyle.Render("←/→ move • enter drop • 1-7 drop • r restart • q quit") + "\n")
	return sb.String()
}

func (m Model) statusLine(view game.View) string {
	switch view.Status {
	case domain.StatusWon:
		if m.bot != nil && view.Winner == m.opts.BotSymbol {
			return m.botName + " wins!"
		}
		return fmt.Sprintf("Player %s wins!", view.Winner)
	case domain.StatusDraw:
		return "It's a draw!"
	}
	if m.thinking || m.botToMove() {
		return m.botName + " is thinking..."
	}
	return fmt.Sprintf("Player %s to move", renderCell(view.Active))
}

func renderCell(cell domain.Cell) string {
	switch cell {
	case domain.PlayerX:
		return xStyle.Render("X")
	case domain.PlayerO:
		return oStyle.Render("O")
	default:
		return " "
	}
}
