package claimbot

import (
	"context"
	"log/slog"

	"github.com/disgoorg/claim-bot/claimbot/config"
	"github.com/disgoorg/claim-bot/claimbot/ledger"
	"github.com/disgoorg/claim-bot/claimbot/services"
	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
)

func New(cfg Config, version string, commit string) *Bot {
	l := ledger.New()
	return &Bot{
		Cfg:           cfg,
		Version:       version,
		Commit:        commit,
		Ledger:        l,
		CreditService: services.NewCreditService(l, services.SystemClock{}, cfg.Claim.Grant),
	}
}

type Bot struct {
	Cfg           Config
	Client        bot.Client
	Version       string
	Commit        string
	Ledger        *ledger.Ledger
	CreditService *services.CreditService
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(
			gateway.IntentGuilds,
			gateway.IntentDirectMessages,
			gateway.IntentMessageContent,
		)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("ClaimBot is now ready",
		slog.String("type", "sys"),
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), config.PresenceTimeout)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithListeningActivity("/dailyclaim"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}
