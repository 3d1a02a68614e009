package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"slash-parser/internal/command"
)

// registerCommands bulk-overwrites the application's slash commands from the
// registry, scoped to the configured guild (or global when unset).
func (b *Bot) registerCommands() error {
	var defs []*discordgo.ApplicationCommand
	for _, c := range command.All() {
		if sp, ok := c.(command.SlashProvider); ok {
			if def := sp.SlashDefinition(); def != nil {
				defs = append(defs, def)
			}
		}
	}

	appID := b.dg.State.User.ID
	if _, err := b.dg.ApplicationCommandBulkOverwrite(appID, b.cfg.GuildID, defs); err != nil {
		return fmt.Errorf("bulk overwrite: %w", err)
	}

	scope := "global"
	if b.cfg.GuildID != "" {
		scope = b.cfg.GuildID
	}
	b.log.Info().Int("count", len(defs)).Str("scope", scope).Msg("slash commands registered")
	return nil
}
