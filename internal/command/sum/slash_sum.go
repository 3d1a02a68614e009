package sum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"slash-parser/internal/command"
	"slash-parser/internal/discord"
	"slash-parser/internal/middleware"
	"slash-parser/pkg/parser"
)

// Two to ten integers in one string option.
var numbers = parser.MustVariadicArgs(2, 10, parser.KindInteger)

type SumCommand struct{}

func (c *SumCommand) Name() string        { return "sum" }
func (c *SumCommand) Description() string { return "Add up a list of integers" }
func (c *SumCommand) Group() string       { return "demo" }
func (c *SumCommand) Category() string    { return "🧮 Utility" }

func (c *SumCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "numbers",
				Description: "Two to ten integers separated by spaces, e.g. `1 2 3`",
				Required:    true,
			},
		},
	}
}

func (c *SumCommand) Run(ctx interface{}) error {
	sctx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	raw := sctx.Option("numbers")
	values, err := numbers.Parse(sctx.Ctx, parser.NewContext(sctx.Session, sctx.Event), raw)
	if err != nil {
		var failed *parser.VariadicArgsFailedError
		if errors.As(err, &failed) {
			bad := make([]string, 0, len(failed.Errors))
			for tok := range failed.Errors {
				bad = append(bad, "`"+tok+"`")
			}
			return discord.RespondEphemeral(sctx.Session, sctx.Event,
				"These are not integers: "+strings.Join(bad, ", "))
		}
		var bounds *parser.InvalidVariadicArgumentsError
		if errors.As(err, &bounds) {
			return discord.RespondEphemeral(sctx.Session, sctx.Event, bounds.Error())
		}
		return err
	}

	var total int64
	for _, v := range values {
		total += v.(int64)
	}

	return discord.RespondEmbed(sctx.Session, sctx.Event, &discordgo.MessageEmbed{
		Title:       "🧮 Sum",
		Description: fmt.Sprintf("`%s` = **%d**", raw, total),
		Color:       discord.EmbedColor,
	})
}

func init() {
	command.Register(
		&SumCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
