package bot

import (
	"fmt"

	"github.com/iamasit07/4-in-a-row-console/internal/domain"
)

const ErrNoMoveAvailable domain.Error = "no valid move available"

// Level selects how much of the policy the bot uses
type Level string

const (
	LevelHeuristic Level = "heuristic"
	LevelRandom    Level = "random"
)

var BotNames = map[Level]string{
	LevelHeuristic: "Computer",
	LevelRandom:    "Rookie",
}

func GetBotName(level Level) string {
	if name, ok := BotNames[level]; ok {
		return name
	}
	return "BOT"
}

func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelHeuristic, LevelRandom:
		return Level(s), nil
	case "":
		return LevelHeuristic, nil
	}
	return "", fmt.Errorf("unknown bot level %q", s)
}

// NewBot builds a heuristic for the requested level
func NewBot(level Level, symbol domain.Cell, opts ...Option) (*Heuristic, error) {
	switch level {
	case LevelHeuristic, "":
		return NewHeuristic(symbol, opts...)
	case LevelRandom:
		return NewHeuristic(symbol, append(opts, withRandomOnly())...)
	default:
		return nil, fmt.Errorf("unknown bot level %q", level)
	}
}
