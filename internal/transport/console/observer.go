package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/iamasit07/4-in-a-row-console/internal/domain"
	"github.com/iamasit07/4-in-a-row-console/internal/service/game"
)

// Observer prints the game as it happens
type Observer struct {
	out      io.Writer
	renderer *Renderer
}

func NewObserver(out io.Writer, renderer *Renderer) *Observer {
	return &Observer{out: out, renderer: renderer}
}

func (o *Observer) OnTurn(view game.View, player game.Player) {
	o.renderer.Render(view.Grid)
}

func (o *Observer) OnRejected(player game.Player, column int, err error) {
	switch {
	case errors.Is(err, domain.ErrColumnFull):
		fmt.Fprintln(o.out, "Column is full, please choose another column.")
	case errors.Is(err, domain.ErrInvalidMove):
		fmt.Fprintf(o.out, "Invalid input. Please enter a number between 1 and %d.\n", domain.Columns)
	default:
		fmt.Fprintf(o.out, "Move rejected: %v\n", err)
	}
}

func (o *Observer) OnMove(player game.Player, column int, view game.View) {
	if player.IsBot() {
		fmt.Fprintf(o.out, "%s chose column %d\n", player.Name(), column)
	}
}

func (o *Observer) OnFinish(result game.Result) {
	o.renderer.Render(result.Grid)
	switch result.Status {
	case domain.StatusWon:
		if result.WinnerIsBot {
			fmt.Fprintf(o.out, "%s wins!\n", result.WinnerName)
		} else {
			fmt.Fprintf(o.out, "Player %s wins!\n", result.Winner)
		}
	case domain.StatusDraw:
		fmt.Fprintln(o.out, "It's a draw!")
	}
}
