package handlers

import (
	"log/slog"
	"strings"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
)

// EchoHandler repeats plain direct messages back to their sender.
// Guild messages never reach it.
func EchoHandler() bot.EventListener {
	return bot.NewListenerFunc(func(e *events.DMMessageCreate) {
		if e.Message.Author.Bot {
			return
		}
		reply, ok := echoReply(e.Message.Content)
		if !ok {
			return
		}

		if _, err := e.Client().Rest().CreateMessage(e.ChannelID, discord.MessageCreate{Content: reply}); err != nil {
			slog.Error("Failed to echo direct message",
				slog.String("type", "cmd"),
				slog.String("user_id", e.Message.Author.ID.String()),
				slog.Any("error", err),
			)
		}
	})
}

func echoReply(content string) (string, bool) {
	if strings.TrimSpace(content) == "" || strings.HasPrefix(content, "/") {
		return "", false
	}
	return "You said: " + content, true
}
