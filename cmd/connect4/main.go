package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4-in-a-row-console/internal/config"
	"github.com/iamasit07/4-in-a-row-console/internal/domain"
	"github.com/iamasit07/4-in-a-row-console/internal/service/bot"
	"github.com/iamasit07/4-in-a-row-console/internal/transport/console"
	"github.com/iamasit07/4-in-a-row-console/internal/transport/tui"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.LoadConfig()
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "game mode: player or bot (empty shows the start menu)")
	flag.StringVar(&cfg.UI, "ui", cfg.UI, "front-end: console or tui")
	flag.StringVar(&cfg.BotLevel, "bot-level", cfg.BotLevel, "bot strength: heuristic or random")
	flag.StringVar(&cfg.BotSymbol, "bot-symbol", cfg.BotSymbol, "token played by the bot: X or O")
	flag.Int64Var(&cfg.BotSeed, "seed", cfg.BotSeed, "random seed for the bot (0 picks one from the clock)")
	flag.BoolVar(&cfg.Color, "color", cfg.Color, "colour the tokens")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log to stderr")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if envErr != nil {
		log.Println("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Validate already vetted both values
	botSymbol, _ := domain.ParseSymbol(cfg.BotSymbol)
	level, _ := bot.ParseLevel(cfg.BotLevel)

	botOpts := []bot.Option{bot.WithMaxAttempts(cfg.BotMaxAttempts)}
	if cfg.BotSeed != 0 {
		botOpts = append(botOpts, bot.WithSeed(cfg.BotSeed))
	}

	log.Printf("[MAIN] Starting %s front-end (mode=%q, bot=%s/%s)", cfg.UI, cfg.Mode, level, botSymbol)

	switch cfg.UI {
	case config.UITUI:
		err = tui.Run(ctx, tui.Options{
			Mode:      cfg.Mode,
			BotLevel:  level,
			BotSymbol: botSymbol,
			BotOpts:   botOpts,
			Delay:     cfg.BotDelay,
		})
	default:
		app := console.NewApp(os.Stdin, os.Stdout, console.Options{
			Mode:      cfg.Mode,
			BotLevel:  level,
			BotSymbol: botSymbol,
			BotOpts:   botOpts,
			Colored:   cfg.Color,
		})
		err = app.Run(ctx)
	}

	switch {
	case err == nil:
		log.Println("[MAIN] Exited cleanly")
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		log.Printf("[MAIN] Input closed: %v", err)
		fmt.Println()
	default:
		log.Printf("[MAIN] Fatal: %v", err)
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogging keeps log lines away from the board unless asked for
func setupLogging(cfg *config.Config) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return func() {}, err
		}
		if cfg.Debug {
			log.SetOutput(io.MultiWriter(os.Stderr, f))
		} else {
			log.SetOutput(f)
		}
		return func() { _ = f.Close() }, nil
	}

	if cfg.Debug {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}
