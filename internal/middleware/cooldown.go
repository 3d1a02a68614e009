package middleware

import (
	"sync"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"slash-parser/internal/command"
)

// WithCooldown limits how often a single user may run the wrapped command.
// Each user gets their own token bucket with the given refill rate and burst.
func WithCooldown(every rate.Limit, burst int) command.Middleware {
	var (
		mu       sync.Mutex
		limiters = map[string]*rate.Limiter{}
	)
	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[key]
		if !ok {
			l = rate.NewLimiter(every, burst)
			limiters[key] = l
		}
		return l
	}

	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				v, ok := ctx.(*command.SlashInteractionContext)
				if !ok || v.Event.Member == nil {
					return cmd.Run(ctx)
				}

				if !limiterFor(v.Event.Member.User.ID).Allow() {
					_ = v.Session.InteractionRespond(v.Event.Interaction, &discordgo.InteractionResponse{
						Type: discordgo.InteractionResponseChannelMessageWithSource,
						Data: &discordgo.InteractionResponseData{
							Content: "Slow down. Try again in a moment.",
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
