package bot

import (
	"log"
	"math/rand"
	"time"

	"github.com/iamasit07/4-in-a-row-console/internal/domain"
)

const DefaultMaxAttempts = 100

// Tier tells which rule of the policy picked the move
type Tier string

const (
	TierWin    Tier = "win"
	TierBlock  Tier = "block"
	TierRandom Tier = "random"
)

// Decision is a chosen 1-indexed column together with the rule that chose it
type Decision struct {
	Column int
	Tier   Tier
}

// Heuristic plays the first matching rule of:
// 1. complete its own three-in-a-row
// 2. block the opponent's three-in-a-row
// 3. play a random open column
//
// It only looks for three tokens plus a gap and never searches deeper, so it
// can be beaten on purpose.
type Heuristic struct {
	symbol      domain.Cell
	rng         *rand.Rand
	maxAttempts int
	randomOnly  bool
}

type Option func(*Heuristic)

func WithRand(rng *rand.Rand) Option {
	return func(h *Heuristic) {
		h.rng = rng
	}
}

func WithSeed(seed int64) Option {
	return func(h *Heuristic) {
		h.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMaxAttempts(n int) Option {
	return func(h *Heuristic) {
		if n > 0 {
			h.maxAttempts = n
		}
	}
}

// withRandomOnly skips the win and block rules
func withRandomOnly() Option {
	return func(h *Heuristic) {
		h.randomOnly = true
	}
}

func NewHeuristic(symbol domain.Cell, opts ...Option) (*Heuristic, error) {
	if !symbol.IsPlayer() {
		return nil, domain.ErrInvalidSymbol
	}
	h := &Heuristic{
		symbol:      symbol,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.rng == nil {
		h.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return h, nil
}

func (h *Heuristic) Symbol() domain.Cell {
	return h.symbol
}

// ChooseMove returns the 1-indexed column the bot wants to play
func (h *Heuristic) ChooseMove(grid domain.Grid) (int, error) {
	d, err := h.Decide(grid)
	if err != nil {
		return 0, err
	}
	return d.Column, nil
}

// Decide runs the policy over a snapshot of the board. The grid is only read.
func (h *Heuristic) Decide(grid domain.Grid) (Decision, error) {
	if err := grid.Validate(); err != nil {
		return Decision{}, err
	}

	if !h.randomOnly {
		// PRIORITY 1: finish our own line
		if col, ok := findWinningMove(grid, h.symbol); ok {
			log.Printf("[BOT] %s completes a line in column %d", h.symbol, col)
			return Decision{Column: col, Tier: TierWin}, nil
		}

		// PRIORITY 2: deny the opponent
		if col, ok := findBlockingMove(grid, h.symbol.Opponent()); ok {
			log.Printf("[BOT] %s blocks %s in column %d", h.symbol, h.symbol.Opponent(), col)
			return Decision{Column: col, Tier: TierBlock}, nil
		}
	}

	// PRIORITY 3: anything that fits
	col, ok := h.randomMove(grid)
	if !ok {
		log.Printf("[BOT] %s found no open column after %d attempts", h.symbol, h.maxAttempts)
		return Decision{}, ErrNoMoveAvailable
	}
	return Decision{Column: col, Tier: TierRandom}, nil
}

// RandomMove is the fallback rule on its own
func (h *Heuristic) RandomMove(grid domain.Grid) (int, error) {
	if err := grid.Validate(); err != nil {
		return 0, err
	}
	col, ok := h.randomMove(grid)
	if !ok {
		return 0, ErrNoMoveAvailable
	}
	return col, nil
}

// randomMove samples columns until one is open, giving up after maxAttempts
func (h *Heuristic) randomMove(grid domain.Grid) (int, bool) {
	for attempt := 0; attempt < h.maxAttempts; attempt++ {
		column := h.rng.Intn(domain.Columns) + 1
		if grid.CanDrop(column - 1) {
			return column, true
		}
	}
	return 0, false
}
