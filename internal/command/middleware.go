package command

import "github.com/bwmarrin/discordgo"

// Middleware wraps a command (logging, guards, cooldowns).
type Middleware func(Command) Command

// WrappedCommand is the base middlewares build on. It keeps the inner
// command's identity and slash definition while overriding Run.
type WrappedCommand struct {
	Command
	Wrap func(ctx interface{}) error
}

func (w *WrappedCommand) Run(ctx interface{}) error {
	if w.Wrap != nil {
		return w.Wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *WrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}
