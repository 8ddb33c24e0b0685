package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var ErrMissingToken = errors.New("no discord token: set DISCORD_TOKEN or KEYVAULT_URL and DISCORD_TOKEN_SECRET")

// Config holds everything the bot reads from its environment
type Config struct {
	// Discord
	DiscordToken    string
	TargetChannelID string
	ChatChannelID   string

	// Optional Azure Key Vault source for the token
	KeyVaultURL        string
	TokenSecretName    string
	TokenSecretVersion string

	// Lookup tables
	PlayersFile  string
	MessagesFile string

	// Polling
	PollInterval time.Duration
	ScanLimit    int
	PollOnStart  bool

	// Keep-alive web server
	Port int

	LogLevel string
}

// Load reads the optional env file, then the environment
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Debug().Str("file", envFile).Err(err).Msg("No env file loaded")
	}

	cfg := &Config{
		DiscordToken:       os.Getenv("DISCORD_TOKEN"),
		TargetChannelID:    os.Getenv("TARGET_CHANNEL_ID"),
		ChatChannelID:      os.Getenv("CHAT_CHANNEL_ID"),
		KeyVaultURL:        os.Getenv("KEYVAULT_URL"),
		TokenSecretName:    os.Getenv("DISCORD_TOKEN_SECRET"),
		TokenSecretVersion: os.Getenv("DISCORD_TOKEN_SECRET_VERSION"),
		PlayersFile:        getEnvOrDefault("PLAYERS_FILE", "players.json"),
		MessagesFile:       getEnvOrDefault("MESSAGES_FILE", "messages.json"),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.PollInterval, err = time.ParseDuration(getEnvOrDefault("POLL_INTERVAL", "30m")); err != nil {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: must be positive, got %s", cfg.PollInterval)
	}
	if cfg.ScanLimit, err = strconv.Atoi(getEnvOrDefault("SCAN_LIMIT", "50")); err != nil {
		return nil, fmt.Errorf("invalid SCAN_LIMIT: %w", err)
	}
	if cfg.ScanLimit < 1 || cfg.ScanLimit > 100 {
		return nil, fmt.Errorf("invalid SCAN_LIMIT: must be between 1 and 100, got %d", cfg.ScanLimit)
	}
	if cfg.PollOnStart, err = strconv.ParseBool(getEnvOrDefault("POLL_ON_START", "false")); err != nil {
		return nil, fmt.Errorf("invalid POLL_ON_START: %w", err)
	}
	if cfg.Port, err = strconv.Atoi(getEnvOrDefault("PORT", "3000")); err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	// Validate required fields
	if cfg.TargetChannelID == "" {
		return nil, fmt.Errorf("TARGET_CHANNEL_ID is required")
	}
	if cfg.ChatChannelID == "" {
		return nil, fmt.Errorf("CHAT_CHANNEL_ID is required")
	}
	if cfg.DiscordToken == "" && (cfg.KeyVaultURL == "" || cfg.TokenSecretName == "") {
		return nil, ErrMissingToken
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
