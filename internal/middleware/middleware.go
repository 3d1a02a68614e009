// Package middleware provides the command wrappers applied at registration:
// guild-only guard, invocation logging, and per-user cooldowns.
package middleware

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"slash-parser/internal/command"
	"slash-parser/internal/storage"
)

// WithGuildOnly rejects slash invocations outside a guild with an ephemeral
// notice.
func WithGuildOnly() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*command.SlashInteractionContext); ok && v.Event.GuildID == "" {
					_ = v.Session.InteractionRespond(v.Event.Interaction, &discordgo.InteractionResponse{
						Type: discordgo.InteractionResponseChannelMessageWithSource,
						Data: &discordgo.InteractionResponseData{
							Content: "You must be in a guild to use this command.",
							Flags:   discordgo.MessageFlagsEphemeral,
						},
					})
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCommandLogger logs each invocation and records it to storage after the
// command has run.
func WithCommandLogger() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				err := cmd.Run(ctx)

				v, ok := ctx.(*command.SlashInteractionContext)
				if !ok || v.Event.Member == nil {
					return err
				}
				user := v.Event.Member.User

				v.Log.Info().
					Str("command", cmd.Name()).
					Str("guild", v.Event.GuildID).
					Str("user", user.Username).
					Err(err).
					Msg("command executed")

				if v.Storage != nil {
					rec := storage.CommandHistoryRecord{
						ChannelID:   v.Event.ChannelID,
						ChannelName: channelName(v.Session, v.Event.ChannelID),
						GuildName:   guildName(v.Session, v.Event.GuildID),
						UserID:      user.ID,
						Username:    user.Username,
						Command:     cmd.Name(),
						Datetime:    time.Now().UTC(),
					}
					if e := v.Storage.AppendCommand(v.Event.GuildID, rec); e != nil {
						v.Log.Warn().Err(e).Str("command", cmd.Name()).Msg("failed to record command")
					}
				}
				return err
			},
		}
	}
}

// channelName resolves from state first, REST second, "" on failure.
func channelName(s *discordgo.Session, channelID string) string {
	ch, err := s.State.Channel(channelID)
	if err != nil {
		ch, err = s.Channel(channelID)
		if err != nil {
			return ""
		}
	}
	return ch.Name
}

func guildName(s *discordgo.Session, guildID string) string {
	g, err := s.State.Guild(guildID)
	if err != nil {
		g, err = s.Guild(guildID)
		if err != nil {
			return ""
		}
	}
	return g.Name
}
