package about

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"slash-parser/internal/command"
	"slash-parser/internal/discord"
	"slash-parser/internal/middleware"
	"slash-parser/internal/version"
)

type AboutCommand struct{}

func (c *AboutCommand) Name() string        { return "about" }
func (c *AboutCommand) Description() string { return "What this bot is and does" }
func (c *AboutCommand) Group() string       { return "core" }
func (c *AboutCommand) Category() string    { return "🕯️ Information" }

func (c *AboutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *AboutCommand) Run(ctx interface{}) error {
	sctx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	msg := embed.NewEmbed().
		SetColor(discord.EmbedColor).
		SetDescription(fmt.Sprintf("ℹ️ **About %s**\n\n%s", version.AppName, version.AppDescription)).
		AddField("Version", version.Version).
		AddField("Commands handled", fmt.Sprintf("%d", sctx.Storage.TotalCommands()))

	return discord.RespondEmbedEphemeral(sctx.Session, sctx.Event, msg.MessageEmbed)
}

func init() {
	command.Register(
		&AboutCommand{},
		middleware.WithCommandLogger(),
	)
}
