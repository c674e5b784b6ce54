package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/4-in-a-row-console/internal/domain"
	"github.com/iamasit07/4-in-a-row-console/internal/service/bot"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	m, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestDigitKeysDrop(t *testing.T) {
	m := newTestModel(t, Options{Mode: ModePlayer})

	m, _ = press(t, m, runeKey('4'))

	grid := m.session.Game.Board.Grid()
	if grid[domain.Rows-1][3] != domain.PlayerX {
		t.Fatalf("token not in column 4:\n%s", grid)
	}
	if m.session.Game.Board.ActiveSymbol() != domain.PlayerO {
		t.Error("turn did not pass to O")
	}
}

func TestCursorKeys(t *testing.T) {
	m := newTestModel(t, Options{Mode: ModePlayer})

	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyLeft},
	)
	if m.cursor != 0 {
		t.Fatalf("cursor=%d want 0", m.cursor)
	}

	m, _ = press(t, m, runeKey('l'), tea.KeyMsg{Type: tea.KeyEnter})
	if m.session.Game.Board.Grid()[domain.Rows-1][1] != domain.PlayerX {
		t.Fatalf("enter did not drop under the cursor:\n%s", m.session.Game.Board.Grid())
	}
}

func TestWinAndRestart(t *testing.T) {
	m := newTestModel(t, Options{Mode: ModePlayer})

	m, _ = press(t, m, runeKey('1'), runeKey('1'), runeKey('2'), runeKey('2'), runeKey('3'), runeKey('3'), runeKey('4'))
	if !strings.Contains(m.View(), "Player X wins!") {
		t.Fatalf("win not shown\n%s", m.View())
	}

	moves := m.session.Game.MoveCount
	m, _ = press(t, m, runeKey('5'))
	if m.session.Game.MoveCount != moves {
		t.Error("move accepted after the game ended")
	}

	oldID := m.session.Game.ID
	m, _ = press(t, m, runeKey('r'))
	if m.session.Game.ID == oldID || m.session.Game.MoveCount != 0 {
		t.Error("restart did not start a new game")
	}
}

func TestFullColumnStatus(t *testing.T) {
	m := newTestModel(t, Options{Mode: ModePlayer})

	for i := 0; i < domain.Rows+1; i++ {
		m, _ = press(t, m, runeKey('1'))
	}
	if m.status != "Column is full, please choose another column." {
		t.Errorf("status=%q", m.status)
	}
	if m.session.Game.MoveCount != domain.Rows {
		t.Errorf("MoveCount=%d want %d", m.session.Game.MoveCount, domain.Rows)
	}
}

func TestBotReplies(t *testing.T) {
	m := newTestModel(t, Options{
		Mode:      ModeBot,
		BotLevel:  bot.LevelHeuristic,
		BotSymbol: domain.PlayerO,
		BotOpts:   []bot.Option{bot.WithSeed(9)},
	})

	m, cmd := press(t, m, runeKey('4'))
	if cmd == nil || !m.thinking {
		t.Fatal("bot turn not scheduled")
	}

	// keys are ignored while the bot is thinking
	m, _ = press(t, m, runeKey('1'))
	if m.session.Game.MoveCount != 1 {
		t.Fatalf("MoveCount=%d want 1", m.session.Game.MoveCount)
	}

	m, _ = press(t, m, cmd())
	if m.thinking {
		t.Error("still thinking after the reply")
	}
	if m.session.Game.MoveCount != 2 {
		t.Fatalf("MoveCount=%d want 2", m.session.Game.MoveCount)
	}
	if !strings.HasPrefix(m.status, "Computer chose column") {
		t.Errorf("status=%q", m.status)
	}
}

func TestBotOpensAsX(t *testing.T) {
	m := newTestModel(t, Options{
		Mode:      ModeBot,
		BotLevel:  bot.LevelRandom,
		BotSymbol: domain.PlayerX,
		BotOpts:   []bot.Option{bot.WithSeed(2)},
	})

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init did not schedule the bot")
	}
	m, _ = press(t, m, cmd())
	if m.session.Game.MoveCount != 1 || m.session.Game.Board.ActiveSymbol() != domain.PlayerO {
		t.Errorf("bot did not open the game")
	}
}

func TestStaleBotMoveIgnored(t *testing.T) {
	m := newTestModel(t, Options{Mode: ModeBot, BotSymbol: domain.PlayerO, BotOpts: []bot.Option{bot.WithSeed(1)}})

	m, _ = press(t, m, botMoveMsg{
		decision:  bot.Decision{Column: 1, Tier: bot.TierRandom},
		moveCount: 5,
		gameID:    m.session.Game.ID,
	})
	if m.session.Game.MoveCount != 0 {
		t.Error("stale bot move was applied")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{Mode: ModePlayer})

	_, cmd := press(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("no command returned")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestNewRejectsUnknownMode(t *testing.T) {
	if _, err := New(Options{Mode: "spectator"}); err == nil {
		t.Fatal("expected an error")
	}
}
