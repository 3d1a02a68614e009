package whois

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"slash-parser/internal/command"
	"slash-parser/internal/discord"
	"slash-parser/internal/middleware"
	"slash-parser/pkg/parser"
)

// Each token may be a member, a role or a user, tried in that order.
var targets = parser.MustStringParser(parser.KindMentionable)

type WhoisCommand struct{}

func (c *WhoisCommand) Name() string        { return "whois" }
func (c *WhoisCommand) Description() string { return "Identify the mentioned members, roles and users" }
func (c *WhoisCommand) Group() string       { return "demo" }
func (c *WhoisCommand) Category() string    { return "🔍 Lookup" }

func (c *WhoisCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "targets",
				Description: "Mentions, IDs or names separated by spaces",
				Required:    true,
			},
		},
	}
}

func (c *WhoisCommand) Run(ctx interface{}) error {
	sctx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	raw := sctx.Option("targets")
	res, err := targets.Parse(sctx.Ctx, parser.NewContext(sctx.Session, sctx.Event), raw)
	if err != nil {
		return discord.RespondEphemeral(sctx.Session, sctx.Event,
			fmt.Sprintf("Nothing in `%s` resolved to a member, role or user.", raw))
	}

	var lines []string
	for _, tok := range res.Tokens() {
		if conv, ok := res.Success[tok]; ok {
			lines = append(lines, describe(tok, conv.Value))
		} else {
			lines = append(lines, fmt.Sprintf("`%s`: not found", tok))
		}
	}

	return discord.RespondEmbed(sctx.Session, sctx.Event, &discordgo.MessageEmbed{
		Title:       "🔍 Whois",
		Description: strings.Join(lines, "\n"),
		Color:       discord.EmbedColor,
	})
}

func describe(token string, v interface{}) string {
	switch e := v.(type) {
	case *discordgo.Member:
		return fmt.Sprintf("`%s`: member **%s**", token, e.User.Username)
	case *discordgo.Role:
		return fmt.Sprintf("`%s`: role **%s**", token, e.Name)
	case *discordgo.User:
		return fmt.Sprintf("`%s`: user **%s**", token, e.Username)
	default:
		return fmt.Sprintf("`%s`: %v", token, v)
	}
}

func init() {
	command.Register(
		&WhoisCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
