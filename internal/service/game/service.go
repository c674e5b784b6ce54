package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/4-in-a-row-console/internal/domain"
	"github.com/iamasit07/4-in-a-row-console/pkg/uid"
)

const ErrBotMove domain.Error = "bot played an illegal move"

// Player supplies moves for one side of the board
type Player interface {
	Name() string
	IsBot() bool
	// NextMove returns a 1-indexed column
	NextMove(ctx context.Context, view View) (int, error)
}

// Observer is told about everything the loop does, renderers hang off it
type Observer interface {
	OnTurn(view View, player Player)
	OnRejected(player Player, column int, err error)
	OnMove(player Player, column int, view View)
	OnFinish(result Result)
}

// View is a read-only snapshot of a session
type View struct {
	GameID    string
	Grid      domain.Grid
	Active    domain.Cell
	Status    domain.GameStatus
	Winner    domain.Cell
	MoveCount int
	LastRow   int
	LastCol   int
}

type Result struct {
	GameID      string
	Status      domain.GameStatus
	Winner      domain.Cell
	WinnerName  string
	WinnerIsBot bool
	Moves       int
	Duration    time.Duration
	Grid        domain.Grid
}

// Session ties a game to the two players sitting at it
type Session struct {
	Game       *domain.Game
	Players    map[domain.Cell]Player
	CreatedAt  time.Time
	FinishedAt time.Time
	observer   Observer
}

func NewSession(playerX, playerO Player, observer Observer) (*Session, error) {
	if playerX == nil || playerO == nil {
		return nil, fmt.Errorf("both players are required")
	}
	if observer == nil {
		observer = nopObserver{}
	}

	s := &Session{
		Game: domain.NewGame(),
		Players: map[domain.Cell]Player{
			domain.PlayerX: playerX,
			domain.PlayerO: playerO,
		},
		CreatedAt: time.Now(),
		observer:  observer,
	}

	log.Printf("[GAME] Created game %s: %s (X) vs %s (O)", uid.ShortID(s.Game.ID), playerX.Name(), playerO.Name())
	return s, nil
}

func (s *Session) View() View {
	row, col, ok := s.Game.Board.LastMove()
	if !ok {
		row, col = -1, -1
	}
	return View{
		GameID:    s.Game.ID,
		Grid:      s.Game.Board.Grid(),
		Active:    s.Game.Board.ActiveSymbol(),
		Status:    s.Game.Status,
		Winner:    s.Game.Winner,
		MoveCount: s.Game.MoveCount,
		LastRow:   row,
		LastCol:   col,
	}
}

// Current returns the player whose turn it is
func (s *Session) Current() Player {
	return s.Players[s.Game.Board.ActiveSymbol()]
}

// Play applies a single 1-indexed move for the active player and returns the
// row the token landed on
func (s *Session) Play(column int) (int, error) {
	symbol := s.Game.Board.ActiveSymbol()

	row, err := s.Game.MakeMove(column)
	if err != nil {
		return -1, err
	}

	log.Printf("[GAME] %s: %s played column %d (move %d)", uid.ShortID(s.Game.ID), symbol, column, s.Game.MoveCount)

	switch s.Game.Status {
	case domain.StatusWon:
		s.FinishedAt = time.Now()
		log.Printf("[GAME] %s: %s wins after %d moves", uid.ShortID(s.Game.ID), s.Game.Winner, s.Game.MoveCount)
	case domain.StatusDraw:
		s.FinishedAt = time.Now()
		log.Printf("[GAME] %s: draw after %d moves", uid.ShortID(s.Game.ID), s.Game.MoveCount)
	}

	return row, nil
}

func (s *Session) Result() Result {
	end := s.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}
	r := Result{
		GameID:   s.Game.ID,
		Status:   s.Game.Status,
		Winner:   s.Game.Winner,
		Moves:    s.Game.MoveCount,
		Duration: end.Sub(s.CreatedAt),
		Grid:     s.Game.Board.Grid(),
	}
	if winner, ok := s.Players[s.Game.Winner]; ok {
		r.WinnerName = winner.Name()
		r.WinnerIsBot = winner.IsBot()
	}
	return r
}

// Run drives the game to the end: render, ask the active player for a move,
// apply it, and repeat until someone wins or the board fills up. A human's
// illegal move is reported and asked again; a bot's is an error.
func (s *Session) Run(ctx context.Context) (Result, error) {
	for !s.Game.IsFinished() {
		if err := ctx.Err(); err != nil {
			log.Printf("[GAME] %s: stopped: %v", uid.ShortID(s.Game.ID), err)
			return s.Result(), err
		}

		view := s.View()
		player := s.Players[view.Active]
		s.observer.OnTurn(view, player)

		column, err := player.NextMove(ctx, view)
		if err != nil {
			return s.Result(), fmt.Errorf("%s could not move: %w", player.Name(), err)
		}

		if _, err := s.Play(column); err != nil {
			if player.IsBot() {
				return s.Result(), fmt.Errorf("%w: column %d: %v", ErrBotMove, column, err)
			}
			if errors.Is(err, domain.ErrInvalidMove) || errors.Is(err, domain.ErrColumnFull) {
				s.observer.OnRejected(player, column, err)
				continue
			}
			return s.Result(), err
		}

		s.observer.OnMove(player, column, s.View())
	}

	result := s.Result()
	s.observer.OnFinish(result)
	return result, nil
}

type nopObserver struct{}

func (nopObserver) OnTurn(View, Player)           {}
func (nopObserver) OnRejected(Player, int, error) {}
func (nopObserver) OnMove(Player, int, View)      {}
func (nopObserver) OnFinish(Result)               {}
