package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"slash-parser/internal/storage"
)

// Command is the contract every bot command satisfies. Run receives one of
// the context structs below depending on how the command was invoked.
type Command interface {
	Name() string
	Description() string
	Group() string
	Category() string
	Run(ctx interface{}) error
}

// SlashProvider is implemented by commands that register a slash definition.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// SlashInteractionContext is what the runtime hands a slash command.
type SlashInteractionContext struct {
	Ctx     context.Context
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
	Log     zerolog.Logger
}

// Option returns the named string option's value, or "" when absent.
func (c *SlashInteractionContext) Option(name string) string {
	for _, opt := range c.Event.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
