package game

import (
	"context"

	"github.com/iamasit07/4-in-a-row-console/internal/service/bot"
)

// BotPlayer lets the heuristic take a seat at the table
type BotPlayer struct {
	name string
	bot  *bot.Heuristic
	last bot.Decision
}

func NewBotPlayer(name string, h *bot.Heuristic) *BotPlayer {
	return &BotPlayer{name: name, bot: h}
}

func (p *BotPlayer) Name() string { return p.name }

func (p *BotPlayer) IsBot() bool { return true }

func (p *BotPlayer) NextMove(ctx context.Context, view View) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	d, err := p.bot.Decide(view.Grid)
	if err != nil {
		return 0, err
	}
	p.last = d
	return d.Column, nil
}

// LastDecision returns what the bot picked on its previous turn
func (p *BotPlayer) LastDecision() bot.Decision {
	return p.last
}
