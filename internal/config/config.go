package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ModeAsk    = ""
	ModePlayer = "player"
	ModeBot    = "bot"

	UIConsole = "console"
	UITUI     = "tui"
)

type Config struct {
	Mode           string
	UI             string
	BotLevel       string
	BotSymbol      string
	BotSeed        int64
	BotMaxAttempts int
	BotDelay       time.Duration
	Color          bool
	LogFile        string
	Debug          bool
}

var AppConfig *Config

func LoadConfig() *Config {
	mode := strings.ToLower(GetEnv("CONNECT4_MODE", ModeAsk))
	ui := strings.ToLower(GetEnv("CONNECT4_UI", UIConsole))

	// Bot
	botLevel := strings.ToLower(GetEnv("CONNECT4_BOT_LEVEL", "heuristic"))
	botSymbol := strings.ToUpper(GetEnv("CONNECT4_BOT_SYMBOL", "O"))
	botSeed := GetEnvAsInt64("CONNECT4_BOT_SEED", 0)
	botMaxAttempts := GetEnvAsInt("CONNECT4_BOT_MAX_ATTEMPTS", 100)
	botDelayMs := GetEnvAsInt("CONNECT4_BOT_DELAY_MS", 400)

	// Output
	color := GetEnvAsBool("CONNECT4_COLOR", true)
	logFile := GetEnv("CONNECT4_LOG_FILE", "")
	debug := GetEnvAsBool("CONNECT4_DEBUG", false)

	AppConfig = &Config{
		Mode:           mode,
		UI:             ui,
		BotLevel:       botLevel,
		BotSymbol:      botSymbol,
		BotSeed:        botSeed,
		BotMaxAttempts: botMaxAttempts,
		BotDelay:       time.Duration(botDelayMs) * time.Millisecond,
		Color:          color,
		LogFile:        logFile,
		Debug:          debug,
	}

	return AppConfig
}

// Validate rejects values the rest of the program has no way to handle
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeAsk, ModePlayer, ModeBot:
	default:
		return fmt.Errorf("invalid mode %q, expected %q or %q", c.Mode, ModePlayer, ModeBot)
	}

	switch c.UI {
	case UIConsole, UITUI:
	default:
		return fmt.Errorf("invalid ui %q, expected %q or %q", c.UI, UIConsole, UITUI)
	}

	switch c.BotLevel {
	case "heuristic", "random":
	default:
		return fmt.Errorf("invalid bot level %q", c.BotLevel)
	}

	if c.BotSymbol != "X" && c.BotSymbol != "O" {
		return fmt.Errorf("invalid bot symbol %q, expected X or O", c.BotSymbol)
	}

	if c.BotMaxAttempts <= 0 {
		return fmt.Errorf("bot max attempts must be positive, got %d", c.BotMaxAttempts)
	}

	if c.BotDelay < 0 {
		return fmt.Errorf("bot delay cannot be negative")
	}

	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
