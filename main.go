package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/disgoorg/claim-bot/claimbot"
	"github.com/disgoorg/claim-bot/claimbot/commands"
	"github.com/disgoorg/claim-bot/claimbot/config"
	"github.com/disgoorg/claim-bot/claimbot/economy"
	"github.com/disgoorg/claim-bot/claimbot/handlers"
	"github.com/disgoorg/claim-bot/claimbot/logger"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	slog.SetDefault(slog.New(logger.NewHandler(slog.LevelInfo)))

	cfg, err := claimbot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))

	logger.LogSystem("Starting ClaimBot",
		slog.String("version", version),
		slog.String("commit", commit),
		slog.Int64("daily_grant", cfg.Claim.Grant))

	b := claimbot.New(*cfg, version, commit)

	monitor := economy.NewLedgerMonitor(b.Ledger, cfg.Monitor.Interval())
	if err = monitor.Start(); err != nil {
		logger.LogError("Failed to start ledger monitor", err)
		os.Exit(-1)
	}
	defer func() {
		if err := monitor.Stop(); err != nil {
			logger.LogError("Failed to stop ledger monitor", err)
		}
	}()

	h := handler.New()

	// System commands
	h.Command("/start", handlers.WrapWithLogging("start", commands.StartHandler))
	h.Command("/help", handlers.WrapWithLogging("help", commands.HelpHandler))
	h.Command("/version", commands.VersionHandler(b))

	// Credit commands
	h.Command("/dailyclaim", handlers.WrapWithLogging("dailyclaim", commands.DailyClaimHandler(b)))
	h.Command("/credits", handlers.WrapWithLogging("credits", commands.CreditsHandler(b)))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady), handlers.EchoHandler()); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "bot_setup"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		logger.LogSystem("Syncing commands", slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("component", "command_sync"),
				slog.String("status", "failed"),
			)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.GatewayOpenTimeout)
	defer cancel()
	if err = b.Client.OpenGateway(ctx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("component", "gateway"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	logger.LogSystem("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	logger.LogSystem("Shutting down bot...")
}
