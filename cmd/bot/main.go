package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/app"
	"github.com/KirkDiggler/gridiron/internal/common/logger"
	"github.com/KirkDiggler/gridiron/internal/config"
	"github.com/KirkDiggler/gridiron/internal/handlers/discord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(&logger.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	if cfg.DiscordToken == "" {
		zl.Fatal("DISCORD_TOKEN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	a, err := app.New(ctx, cfg, zl)
	cancel()
	if err != nil {
		zl.Fatal("failed to start", zap.Error(err))
	}
	defer a.Close()

	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		CoachService:  a.CoachService,
		Commentary:    a.Commentary,
		Archetypes:    a.Catalog.Archetypes(),
		Logger:        zl.Named("discord"),
	})
	if err != nil {
		zl.Fatal("failed to create Discord bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		zl.Fatal("failed to start Discord bot", zap.Error(err))
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		zl.Error("error stopping bot", zap.Error(err))
	}

	zl.Info("bot has been shut down")
}
