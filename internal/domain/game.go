package domain

import "github.com/iamasit07/4-in-a-row-console/pkg/uid"

type Game struct {
	ID        string
	Board     *Board
	Status    GameStatus
	Winner    Cell
	MoveCount int
}

func NewGame() *Game {
	return &Game{
		ID:        uid.GenerateGameID(),
		Board:     NewBoard(),
		Status:    StatusActive,
		Winner:    Empty,
		MoveCount: 0,
	}
}

// MakeMove plays the active token into a 1-indexed column and resolves the
// turn: a win or a draw ends the game, otherwise the turn passes. On a win the
// active symbol stays on the winner.
func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameOver
	}

	if column < 1 || column > Columns {
		return -1, ErrInvalidMove
	}

	if !g.Board.Place(column) {
		return -1, ErrColumnFull
	}
	row, _, _ := g.Board.LastMove()

	g.MoveCount++

	if g.Board.HasWin() {
		g.Status = StatusWon
		g.Winner = g.Board.ActiveSymbol()
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.Board.SwitchActivePlayer()

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
