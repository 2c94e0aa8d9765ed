package claimbot

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// unsetToken clears BOT_TOKEN for the duration of the test.
func unsetToken(t *testing.T) {
	t.Helper()
	t.Setenv(TokenEnv, "")
	require.NoError(t, os.Unsetenv(TokenEnv))
}

func TestLoadConfig_File(t *testing.T) {
	unsetToken(t)
	path := writeFile(t, "config.toml", `
[log]
level = "debug"

[bot]
token = "file-token"
dev_guilds = [817327181659111454]

[claim]
grant = 45

[monitor]
interval_minutes = 5
`)

	cfg, err := LoadConfig(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "file-token", cfg.Bot.Token)
	assert.Equal(t, []snowflake.ID{817327181659111454}, cfg.Bot.DevGuilds)
	assert.Equal(t, int64(45), cfg.Claim.Grant)
	assert.Equal(t, 5*time.Minute, cfg.Monitor.Interval())
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetToken(t)
	path := writeFile(t, "config.toml", `
[bot]
token = "file-token"
`)

	cfg, err := LoadConfig(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, int64(30), cfg.Claim.Grant)
	assert.Equal(t, 15*time.Minute, cfg.Monitor.Interval())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv(TokenEnv, "env-token")
	path := writeFile(t, "config.toml", `
[bot]
token = "file-token"
`)

	cfg, err := LoadConfig(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Bot.Token)
}

func TestLoadConfig_DotEnvWithoutConfigFile(t *testing.T) {
	unsetToken(t)
	envFile := writeFile(t, ".env", "BOT_TOKEN=dotenv-token\n")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"), envFile)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-token", cfg.Bot.Token)
	assert.Equal(t, int64(30), cfg.Claim.Grant)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "No token", content: "[log]\nlevel = \"info\"\n"},
		{name: "Bad grant", content: "[bot]\ntoken = \"x\"\n[claim]\ngrant = 0\n"},
		{name: "Malformed", content: "[bot\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetToken(t)
			path := writeFile(t, "config.toml", tt.content)

			_, err := LoadConfig(path, filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
