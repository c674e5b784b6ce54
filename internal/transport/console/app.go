package console

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/iamasit07/4-in-a-row-console/internal/domain"
	"github.com/iamasit07/4-in-a-row-console/internal/service/bot"
	"github.com/iamasit07/4-in-a-row-console/internal/service/game"
)

const (
	ModePlayer = "player"
	ModeBot    = "bot"
)

type Options struct {
	// Mode skips the start menu when set to ModePlayer or ModeBot
	Mode      string
	BotLevel  bot.Level
	BotSymbol domain.Cell
	BotOpts   []bot.Option
	Colored   bool
}

// App is the text console: start menu, then one game
type App struct {
	out      io.Writer
	prompter *Prompter
	renderer *Renderer
	opts     Options
}

func NewApp(in io.Reader, out io.Writer, opts Options) *App {
	if !opts.BotSymbol.IsPlayer() {
		opts.BotSymbol = domain.PlayerO
	}
	return &App{
		out:      out,
		prompter: NewPrompter(in, out),
		renderer: NewRenderer(out, opts.Colored),
		opts:     opts,
	}
}

// Run shows the menu (unless a mode was preset) and plays the chosen game.
// Declining to play is not an error.
func (a *App) Run(ctx context.Context) error {
	mode := a.opts.Mode
	if mode == "" {
		var err error
		mode, err = a.menu(ctx)
		if err != nil {
			return err
		}
		if mode == "" {
			return nil
		}
	}

	session, err := a.newSession(mode)
	if err != nil {
		return err
	}

	result, err := session.Run(ctx)
	if err != nil {
		return err
	}
	log.Printf("[CONSOLE] Game %s finished: %s in %d moves", result.GameID, result.Status, result.Moves)
	return nil
}

// menu asks until it gets a usable answer. It returns "" when the user
// doesn't want to play.
func (a *App) menu(ctx context.Context) (string, error) {
	fmt.Fprintln(a.out, "This is a Connect 4 Start Menu")
	fmt.Fprintln(a.out)

	for {
		input, err := a.prompter.Line(ctx, "Start the game? Type yes or No")
		if err != nil {
			return "", err
		}

		switch strings.ToLower(input) {
		case "yes":
		case "no":
			fmt.Fprintln(a.out, "okay, maybe next time")
			return "", nil
		default:
			fmt.Fprintf(a.out, "%s is not a valid input. try again\n", input)
			continue
		}

		fmt.Fprintln(a.out, "Do you want to play against a bot or another player?")
		choice, err := a.prompter.Line(ctx, "Type 'player' for a human opponent and 'bot' for a computer.")
		if err != nil {
			return "", err
		}

		switch strings.ToLower(choice) {
		case ModePlayer:
			fmt.Fprintln(a.out, "Okay starting game, Have fun!")
			return ModePlayer, nil
		case ModeBot:
			fmt.Fprintln(a.out, "Start the game against a bot")
			return ModeBot, nil
		default:
			fmt.Fprintln(a.out, "This is not a valid input. You are supposed to type 'player' or 'bot'")
		}
	}
}

func (a *App) newSession(mode string) (*game.Session, error) {
	observer := NewObserver(a.out, a.renderer)

	switch mode {
	case ModePlayer:
		return game.NewSession(
			NewHumanPlayer("Player X", a.prompter),
			NewHumanPlayer("Player O", a.prompter),
			observer,
		)
	case ModeBot:
		h, err := bot.NewBot(a.opts.BotLevel, a.opts.BotSymbol, a.opts.BotOpts...)
		if err != nil {
			return nil, err
		}
		computer := game.NewBotPlayer(bot.GetBotName(a.opts.BotLevel), h)
		human := NewHumanPlayer("Player "+a.opts.BotSymbol.Opponent().String(), a.prompter)
		if a.opts.BotSymbol == domain.PlayerX {
			return game.NewSession(computer, human, observer)
		}
		return game.NewSession(human, computer, observer)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
