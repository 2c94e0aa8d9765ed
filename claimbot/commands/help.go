package commands

import (
	"fmt"
	"strings"

	"github.com/disgoorg/claim-bot/claimbot/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Help = discord.SlashCommandCreate{
	Name:        "help",
	Description: "Show this help message",
}

func HelpHandler(e *handler.CommandEvent) error {
	return utils.EH.CreateText(e, helpMessage(e.GuildID() == nil))
}

func helpMessage(private bool) string {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, cmd := range Commands {
		if cmd, ok := cmd.(discord.SlashCommandCreate); ok {
			sb.WriteString(fmt.Sprintf("/%s - %s\n", cmd.Name, cmd.Description))
		}
	}
	if !private {
		sb.WriteString("\nTip: You can also message me privately to avoid group chat clutter!")
	}
	return sb.String()
}
