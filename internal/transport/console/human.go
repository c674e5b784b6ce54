package console

import (
	"context"
	"fmt"

	"github.com/iamasit07/4-in-a-row-console/internal/domain"
	"github.com/iamasit07/4-in-a-row-console/internal/service/game"
)

// HumanPlayer asks the person at the keyboard for a column
type HumanPlayer struct {
	name     string
	prompter *Prompter
}

func NewHumanPlayer(name string, prompter *Prompter) *HumanPlayer {
	return &HumanPlayer{name: name, prompter: prompter}
}

func (h *HumanPlayer) Name() string { return h.name }

func (h *HumanPlayer) IsBot() bool { return false }

func (h *HumanPlayer) NextMove(ctx context.Context, view game.View) (int, error) {
	prompt := fmt.Sprintf("Player %s, enter column number (1-%d):", view.Active, domain.Columns)
	return h.prompter.Column(ctx, prompt)
}
