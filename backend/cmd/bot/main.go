package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"toolshelf/backend/internal/api"
	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/discord"
	"toolshelf/backend/internal/graph"
	"toolshelf/backend/pkg/config"
	apperrors "toolshelf/backend/pkg/errors"
	"toolshelf/backend/pkg/logger"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// intents are the gateway events the bot subscribes to. Reading command text
// needs the privileged message content intent.
const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting Discord bot...")

	if err := checkConfig(cfg); err != nil {
		log.Fatal("Invalid bot configuration", zap.Error(err))
	}

	registry, err := catalog.Open(cfg.CatalogFile)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}

	ctx := context.Background()
	related, closeRelated := relatedFinder(ctx, cfg, registry, log)
	defer closeRelated()

	dg, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.Fatal("Failed to create Discord session", zap.Error(err))
	}

	handler := discord.NewHandler(registry, related, cfg.DiscordCommandPrefix, cfg.PublicBaseURL, logger.Named("discord"))
	dg.AddHandler(handler.HandleMessage)
	dg.AddHandler(handler.HandleInteraction)
	dg.Identify.Intents = intents

	log.Info("Discord bot intents configured",
		zap.Bool("guilds", (dg.Identify.Intents&discordgo.IntentsGuilds) != 0),
		zap.Bool("guild_messages", (dg.Identify.Intents&discordgo.IntentsGuildMessages) != 0),
		zap.Bool("direct_messages", (dg.Identify.Intents&discordgo.IntentsDirectMessages) != 0),
		zap.Bool("message_content", (dg.Identify.Intents&discordgo.IntentsMessageContent) != 0),
	)

	if err := dg.Open(); err != nil {
		log.Fatal("Failed to open Discord connection", zap.Error(err))
	}
	defer dg.Close()

	log.Info("Discord bot is running. Press CTRL-C to exit.",
		zap.String("prefix", cfg.DiscordCommandPrefix),
		zap.Int("tools", registry.Len()),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down Discord bot...")
}

func checkConfig(cfg *config.Config) error {
	if cfg.DiscordBotToken == "" {
		return apperrors.NewConfigMissingRequired("DISCORD_BOT_TOKEN")
	}
	return nil
}

// relatedFinder ranks through the graph mirror when one is configured and
// reachable, and in memory otherwise
func relatedFinder(ctx context.Context, cfg *config.Config, registry *catalog.Registry, log *zap.Logger) (discord.RelatedFinder, func()) {
	fallback := api.CatalogRelated{Registry: registry}
	if !cfg.GraphEnabled() {
		return fallback, func() {}
	}

	driver, err := graph.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		log.Warn("Graph unavailable, ranking related tools in memory", zap.Error(err))
		return fallback, func() {}
	}
	repo := graph.NewRepository(driver)
	return api.NewGraphRelated(repo, registry), func() { _ = repo.Close() }
}
