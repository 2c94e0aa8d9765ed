package commands

import (
	"github.com/disgoorg/claim-bot/claimbot"
	"github.com/disgoorg/claim-bot/claimbot/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Credits = discord.SlashCommandCreate{
	Name:        "credits",
	Description: "Check your credit balance",
}

func CreditsHandler(b *claimbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return utils.EH.CreateInfoEmbed(e, b.CreditService.Balance(e.User().ID))
	}
}
