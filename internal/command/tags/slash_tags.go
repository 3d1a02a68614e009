package tags

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"slash-parser/internal/command"
	"slash-parser/internal/discord"
	"slash-parser/internal/middleware"
	"slash-parser/pkg/parser"
)

// tagConverter trims whitespace and lowercases; blank tags don't count.
var tagConverter = parser.ConverterFunc(
	func(_ context.Context, _ *parser.Context, argument string) (interface{}, error) {
		tag := strings.ToLower(strings.TrimSpace(argument))
		if tag == "" {
			return nil, fmt.Errorf("empty tag")
		}
		return tag, nil
	},
)

var tagList = func() *parser.VariadicArgs {
	v := parser.MustVariadicArgs(1, 5, tagConverter)
	v.SplitBy = ","
	return v
}()

type TagsCommand struct{}

func (c *TagsCommand) Name() string        { return "tags" }
func (c *TagsCommand) Description() string { return "Normalize a comma-separated tag list" }
func (c *TagsCommand) Group() string       { return "demo" }
func (c *TagsCommand) Category() string    { return "🧮 Utility" }

func (c *TagsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "names",
				Description: "One to five tags separated by commas",
				Required:    true,
			},
		},
	}
}

func (c *TagsCommand) Run(ctx interface{}) error {
	sctx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	raw := sctx.Option("names")
	values, err := tagList.Parse(sctx.Ctx, parser.NewContext(sctx.Session, sctx.Event), raw)
	if err != nil {
		var bounds *parser.InvalidVariadicArgumentsError
		if errors.As(err, &bounds) {
			return discord.RespondEphemeral(sctx.Session, sctx.Event, bounds.Error())
		}
		return discord.RespondEphemeral(sctx.Session, sctx.Event,
			"Couldn't read those tags. Give me one to five, comma-separated.")
	}

	tags := make([]string, 0, len(values))
	for _, v := range values {
		tags = append(tags, "`"+v.(string)+"`")
	}

	return discord.Respond(sctx.Session, sctx.Event, "Tags: "+strings.Join(tags, " "))
}

func init() {
	command.Register(
		&TagsCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCooldown(rate.Every(3*time.Second), 2),
		middleware.WithCommandLogger(),
	)
}
