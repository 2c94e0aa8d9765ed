package commands

import (
	"errors"
	"log/slog"

	"github.com/disgoorg/claim-bot/claimbot"
	"github.com/disgoorg/claim-bot/claimbot/economy/claim"
	"github.com/disgoorg/claim-bot/claimbot/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var DailyClaim = discord.SlashCommandCreate{
	Name:        "dailyclaim",
	Description: "Claim daily credits!",
}

func DailyClaimHandler(b *claimbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		reply, err := b.CreditService.Claim(e.User().ID)
		if err != nil {
			slog.Error("Failed to claim daily credits",
				slog.String("type", "cmd"),
				slog.String("user_id", e.User().ID.String()),
				slog.Bool("clock_skew", errors.Is(err, claim.ErrClockSkew)),
				slog.Any("error", err),
			)
			return utils.EH.CreateEphemeralError(e, "Your claim could not be processed. Please try again later.")
		}

		return utils.EH.CreateSuccessEmbed(e, reply)
	}
}
