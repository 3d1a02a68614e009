package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"slash-parser/internal/command"
	"slash-parser/internal/config"
	"slash-parser/internal/storage"
)

// Bot owns the Discord session and dispatches interactions to registered
// commands.
type Bot struct {
	dg    *discordgo.Session
	cfg   *config.Config
	store *storage.Storage
	log   zerolog.Logger
	ctx   context.Context
}

// NewBot wires a bot; Run connects it.
func NewBot(cfg *config.Config, store *storage.Storage, log zerolog.Logger) *Bot {
	return &Bot{cfg: cfg, store: store, log: log}
}

// Run opens the session and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg
	b.ctx = ctx

	// GuildMembers keeps the member cache warm so name lookups resolve
	// without REST round-trips.
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentGuildEmojis

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("connected")

	if err := b.registerCommands(); err != nil {
		b.log.Error().Err(err).Msg("failed to register slash commands")
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name

	cmd, ok := command.Get(name)
	if !ok {
		b.log.Warn().Str("command", name).Msg("unknown command")
		return
	}

	ctx := &command.SlashInteractionContext{
		Ctx:     b.ctx,
		Session: s,
		Event:   i,
		Storage: b.store,
		Log:     b.log,
	}
	if err := cmd.Run(ctx); err != nil {
		b.log.Error().Err(err).Str("command", name).Msg("command failed")
	}
}
