package claimbot

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/disgoorg/claim-bot/claimbot/config"
	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// TokenEnv overrides the token from the config file when set.
const TokenEnv = "BOT_TOKEN"

// LoadConfig reads the TOML config at path, then applies .env and
// environment overrides. A missing config file is not an error as long as
// a token ends up set.
func LoadConfig(path string, envFiles ...string) (*Config, error) {
	cfg := defaultConfig()

	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		if err = toml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		slog.Warn("Config file not found, using defaults",
			slog.String("type", "sys"),
			slog.String("path", path))
	default:
		return nil, fmt.Errorf("failed to open config: %w", err)
	}

	if err = godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	if token := os.Getenv(TokenEnv); token != "" {
		cfg.Bot.Token = token
	}

	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("no bot token: set bot.token in %s or %s", path, TokenEnv)
	}
	if cfg.Claim.Grant <= 0 {
		return nil, fmt.Errorf("claim.grant must be positive, got %d", cfg.Claim.Grant)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: slog.LevelInfo},
		Claim: ClaimConfig{
			Grant: config.DailyClaimGrant,
		},
		Monitor: MonitorConfig{
			IntervalMinutes: int(config.LedgerReportInterval / time.Minute),
		},
	}
}

type Config struct {
	Log     LogConfig     `toml:"log"`
	Bot     BotConfig     `toml:"bot"`
	Claim   ClaimConfig   `toml:"claim"`
	Monitor MonitorConfig `toml:"monitor"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

type ClaimConfig struct {
	Grant int64 `toml:"grant"`
}

type MonitorConfig struct {
	// 0 disables the ledger report.
	IntervalMinutes int `toml:"interval_minutes"`
}

func (c MonitorConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}
