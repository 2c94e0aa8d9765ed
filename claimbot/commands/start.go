package commands

import (
	"github.com/disgoorg/claim-bot/claimbot/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Start = discord.SlashCommandCreate{
	Name:        "start",
	Description: "Start the bot",
}

func StartHandler(e *handler.CommandEvent) error {
	return utils.EH.CreateText(e, startMessage(e.GuildID() == nil))
}

func startMessage(private bool) string {
	msg := "Hello! I am your bot. Use /help to see what I can do."
	if !private {
		msg += "\nNote: You can also interact with me in private chat!"
	}
	return msg
}
