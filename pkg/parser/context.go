package parser

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// Interactions carry no message, but converters written against the text
// command shape expect one. Message is the stub they get: no content, no
// mentions.
type Message struct {
	Mentions []*discordgo.User
}

// Context adapts a slash-command interaction to the shape converters expect.
// Instead of forwarding arbitrary attribute access to the interaction, it
// exposes exactly what converters need: the client handle, the interaction
// itself, its guild/channel, and a message stub.
type Context struct {
	session *discordgo.Session
	event   *discordgo.InteractionCreate
	limiter *rate.Limiter
}

// restRate bounds cache-miss REST lookups so a burst of tokens cannot hammer
// the API before discordgo's own rate limiter kicks in.
var restRate = rate.NewLimiter(rate.Limit(5), 5)

// NewContext wraps a session and the interaction being handled.
func NewContext(s *discordgo.Session, e *discordgo.InteractionCreate) *Context {
	return &Context{session: s, event: e, limiter: restRate}
}

// Bot returns the client the interaction arrived on.
func (c *Context) Bot() *discordgo.Session { return c.session }

// Interaction returns the wrapped interaction event.
func (c *Context) Interaction() *discordgo.InteractionCreate { return c.event }

// GuildID returns the guild the interaction was invoked in, or "" in DMs.
func (c *Context) GuildID() string {
	if c.event == nil {
		return ""
	}
	return c.event.GuildID
}

// ChannelID returns the channel the interaction was invoked in.
func (c *Context) ChannelID() string {
	if c.event == nil {
		return ""
	}
	return c.event.ChannelID
}

// Message returns the message stub described above.
func (c *Context) Message() *Message { return &Message{} }

// wait reserves a slot on the REST limiter before a cache-miss fetch.
func (c *Context) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}
