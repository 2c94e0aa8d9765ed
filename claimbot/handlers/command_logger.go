package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/claim-bot/claimbot/config"
	"github.com/disgoorg/disgo/handler"
)

// WrapWithLogging wraps a command handler with logging functionality
func WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()

		guildID := "dm"
		if id := e.GuildID(); id != nil {
			guildID = id.String()
		}
		base := []any{
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
		}

		slog.Debug("Command started", append(base,
			slog.String("guild_id", guildID),
			slog.String("channel_id", e.ChannelID().String()),
		)...)

		done := make(chan error, 1)
		go func() {
			done <- h(e)
		}()

		select {
		case err := <-done:
			took := time.Since(start)
			return logResult(err, took, append(base, slog.Duration("took", took)))

		case <-time.After(config.CommandExecutionTimeout):
			slog.Error("Command timed out", append(base,
				slog.String("status", "timeout"),
				slog.Duration("timeout", config.CommandExecutionTimeout),
			)...)
			return fmt.Errorf("command %s timed out after %s", name, config.CommandExecutionTimeout)
		}
	}
}

func logResult(err error, took time.Duration, attrs []any) error {
	switch {
	case err != nil:
		slog.Error("Command failed", append(attrs,
			slog.Any("error", err),
			slog.String("status", "failed"),
		)...)
	case took > config.SlowCommandThreshold:
		slog.Warn("Command executed slowly", append(attrs,
			slog.String("status", "slow"),
		)...)
	default:
		slog.Info("Command completed", append(attrs,
			slog.String("status", "success"),
		)...)
	}
	return err
}
