package parser

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Entity converters resolve Discord objects from mention syntax, raw IDs and
// names. Lookups hit the session state cache first and only fall back to REST
// (through the shared limiter) on a miss, the same order the rest of the bot
// resolves channels and guilds.

var (
	userMentionRe    = regexp.MustCompile(`^<@!?(\d+)>$`)
	roleMentionRe    = regexp.MustCompile(`^<@&(\d+)>$`)
	channelMentionRe = regexp.MustCompile(`^<#(\d+)>$`)
	anyMentionRe     = regexp.MustCompile(`^<(?:@[!&]?|#)(\d+)>$`)
	emojiRe          = regexp.MustCompile(`^<(a?):([A-Za-z0-9_~]+):(\d+)>$`)
	snowflakeRe      = regexp.MustCompile(`^\d{15,21}$`)
	messageLinkRe    = regexp.MustCompile(`^https://(?:canary\.|ptb\.)?discord(?:app)?\.com/channels/(\d+|@me)/(\d+)/(\d+)/?$`)
	inviteRe         = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:discord\.gg|discord(?:app)?\.com/invite)/([A-Za-z0-9-]+)`)
)

func matchID(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

func notFound(c Converter, value string, t discordgo.ApplicationCommandOptionType, entity string) *ConversionError {
	e := newConversionError(value, t, converterName(c), fmt.Sprintf("%s %q not found", entity, value))
	return &e
}

// MemberConverter resolves a guild member by mention, ID, username, global
// name or nick.
type MemberConverter struct{}

func (c MemberConverter) Convert(ctx context.Context, cc *Context, argument string) (interface{}, error) {
	guildID := cc.GuildID()
	if guildID == "" {
		return nil, notFound(c, argument, discordgo.ApplicationCommandOptionUser, "member")
	}
	s := cc.Bot()

	id := matchID(userMentionRe, argument)
	if id == "" && snowflakeRe.MatchString(argument) {
		id = argument
	}
	if id != "" {
		if m, err := s.State.Member(guildID, id); err == nil {
			return m, nil
		}
		if err := cc.wait(ctx); err != nil {
			return nil, err
		}
		if m, err := s.GuildMember(guildID, id, discordgo.WithContext(ctx)); err == nil {
			return m, nil
		}
		return nil, notFound(c, argument, discordgo.ApplicationCommandOptionUser, "member")
	}

	name := strings.TrimPrefix(argument, "@")
	if g, err := s.State.Guild(guildID); err == nil {
		for _, m := range g.Members {
			if m.Nick != "" && m.Nick == name {
				return m, nil
			}
			if m.User != nil && (m.User.Username == name || (m.User.GlobalName != "" && m.User.GlobalName == name)) {
				return m, nil
			}
		}
	}
	return nil, notFound(c, argument, discordgo.ApplicationCommandOptionUser, "member")
}

// UserConverter resolves a user by mention, ID or username. Inside a guild it
// goes through the member cache; a bare ID also works outside one.
type UserConverter struct{}

func (c UserConverter) Convert(ctx context.Context, cc *Context, argument string) (interface{}, error) {
	s := cc.Bot()
	guildID := cc.GuildID()

	id := matchID(userMentionRe, argument)
	if id == "" && snowflakeRe.MatchString(argument) {
		id = argument
	}
	if id != "" {
		if guildID != "" {
			if m, err := s.State.Member(guildID, id); err == nil && m.User != nil {
				return m.User, nil
			}
		}
		if err := cc.wait(ctx); err != nil {
			return nil, err
		}
		if u, err := s.User(id, discordgo.WithContext(ctx)); err == nil {
			return u, nil
		}
		return nil, notFound(c, argument, discordgo.ApplicationCommandOptionUser, "user")
	}

	name := strings.TrimPrefix(argument, "@")
	if guildID != "" {
		if g, err := s.State.Guild(guildID); err == nil {
			for _, m := range g.Members {
				if m.User != nil && (m.User.Username == name || (m.User.GlobalName != "" && m.User.GlobalName == name)) {
					return m.User, nil
				}
			}
		}
	}
	return nil, notFound(c, argument, discordgo.ApplicationCommandOptionUser, "user")
}

// RoleConverter resolves a guild role by mention, ID or name.
type RoleConverter struct{}

func (c RoleConverter) Convert(ctx context.Context, cc *Context, argument string) (interface{}, error) {
	guildID := cc.GuildID()
	if guildID == "" {
		return nil, notFound(c, argument, discordgo.ApplicationCommandOptionRole, "role")
	}
	s := cc.Bot()

	id := matchID(roleMentionRe, argument)
	if id == "" && snowflakeRe.MatchString(argument) {
		id = argument
	}
	if id != "" {
		if r, err := s.State.Role(guildID, id); err == nil {
			return r, nil
		}
	}

	name := strings.TrimPrefix(argument, "@")
	if g, err := s.State.Guild(guildID); err == nil {
		for _, r := range g.Roles {
			if r.ID == id || r.Name == name {
				return r, nil
			}
		}
	}

	if err := cc.wait(ctx); err != nil {
		return nil, err
	}
	roles, err := s.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err == nil {
		for _, r := range roles {
			if r.ID == id || r.Name == name {
				return r, nil
			}
		}
	}
	return nil, notFound(c, argument, discordgo.ApplicationCommandOptionRole, "role")
}

// ChannelConverter resolves a channel by mention, ID or name.
type ChannelConverter struct{}

func (c ChannelConverter) Convert(ctx context.Context, cc *Context, argument string) (interface{}, error) {
	s := cc.Bot()

	id := matchID(channelMentionRe, argument)
	if id == "" && snowflakeRe.MatchString(argument) {
		id = argument
	}
	if id != "" {
		if ch, err := s.State.Channel(id); err == nil {
			return ch, nil
		}
		if err := cc.wait(ctx); err != nil {
			return nil, err
		}
		if ch, err := s.Channel(id, discordgo.WithContext(ctx)); err == nil {
			return ch, nil
		}
		return nil, notFound(c, argument, discordgo.ApplicationCommandOptionChannel, "channel")
	}

	name := strings.TrimPrefix(argument, "#")
	if guildID := cc.GuildID(); guildID != "" {
		if g, err := s.State.Guild(guildID); err == nil {
			for _, ch := range g.Channels {
				if ch.Name == name {
					return ch, nil
				}
			}
		}
	}
	return nil, notFound(c, argument, discordgo.ApplicationCommandOptionChannel, "channel")
}

// MessageConverter resolves a message from a jump link, a
// "channelID-messageID" pair, or a bare ID in the current channel.
type MessageConverter struct{}

func (c MessageConverter) Convert(ctx context.Context, cc *Context, argument string) (interface{}, error) {
	var channelID, messageID string

	switch {
	case messageLinkRe.MatchString(argument):
		m := messageLinkRe.FindStringSubmatch(argument)
		channelID, messageID = m[2], m[3]
	case strings.Count(argument, "-") == 1:
		parts := strings.SplitN(argument, "-", 2)
		if snowflakeRe.MatchString(parts[0]) && snowflakeRe.MatchString(parts[1]) {
			channelID, messageID = parts[0], parts[1]
		}
	case snowflakeRe.MatchString(argument):
		channelID, messageID = cc.ChannelID(), argument
	}
	if channelID == "" || messageID == "" {
		return nil, notFound(c, argument, discordgo.ApplicationCommandOptionString, "message")
	}

	s := cc.Bot()
	if msg, err := s.State.Message(channelID, messageID); err == nil {
		return msg, nil
	}
	if err := cc.wait(ctx); err != nil {
		return nil, err
	}
	if msg, err := s.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx)); err == nil {
		return msg, nil
	}
	return nil, notFound(c, argument, discordgo.ApplicationCommandOptionString, "message")
}

// EmojiConverter resolves a custom emoji from its full form, its ID, or its
// name within the current guild.
type EmojiConverter struct{}

func (c EmojiConverter) Convert(_ context.Context, cc *Context, argument string) (interface{}, error) {
	s := cc.Bot()
	guildID := cc.GuildID()

	if m := emojiRe.FindStringSubmatch(argument); m != nil {
		animated, name, id := m[1] == "a", m[2], m[3]
		if guildID != "" {
			if g, err := s.State.Guild(guildID); err == nil {
				for _, e := range g.Emojis {
					if e.ID == id {
						return e, nil
					}
				}
			}
		}
		// Not one of ours; the parsed form is still a usable emoji.
		return &discordgo.Emoji{ID: id, Name: name, Animated: animated}, nil
	}

	name := strings.Trim(argument, ":")
	if guildID != "" {
		if g, err := s.State.Guild(guildID); err == nil {
			for _, e := range g.Emojis {
				if e.ID == argument || e.Name == name {
					return e, nil
				}
			}
		}
	}
	return nil, notFound(c, argument, discordgo.ApplicationCommandOptionString, "emoji")
}

// InviteConverter resolves an invite from a URL or bare code. Invites are not
// cached, so this always costs a REST call.
type InviteConverter struct{}

func (c InviteConverter) Convert(ctx context.Context, cc *Context, argument string) (interface{}, error) {
	code := argument
	if m := inviteRe.FindStringSubmatch(argument); m != nil {
		code = m[1]
	}
	if code == "" || strings.ContainsAny(code, " /") {
		return nil, notFound(c, argument, discordgo.ApplicationCommandOptionString, "invite")
	}

	if err := cc.wait(ctx); err != nil {
		return nil, err
	}
	inv, err := cc.Bot().Invite(code, discordgo.WithContext(ctx))
	if err != nil {
		return nil, notFound(c, argument, discordgo.ApplicationCommandOptionString, "invite")
	}
	return inv, nil
}

var namedColours = map[string]int{
	"black":   0x000000,
	"white":   0xffffff,
	"red":     0xe74c3c,
	"green":   0x2ecc71,
	"blue":    0x3498db,
	"yellow":  0xfee75c,
	"orange":  0xe67e22,
	"purple":  0x9b59b6,
	"magenta": 0xe91e63,
	"fuchsia": 0xeb459e,
	"cyan":    0x1abc9c,
	"teal":    0x11806a,
	"gold":    0xf1c40f,
	"gray":    0x95a5a6,
	"grey":    0x95a5a6,
	"blurple": 0x5865f2,
}

// ColourConverter parses #RGB, #RRGGBB, 0x-prefixed hex, or one of a small
// set of named colours into an int usable as an embed colour.
type ColourConverter struct{}

func (c ColourConverter) Convert(_ context.Context, _ *Context, argument string) (interface{}, error) {
	arg := strings.ToLower(strings.TrimSpace(argument))
	if v, ok := namedColours[arg]; ok {
		return v, nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(arg, "#"), "0x")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		if v, err := strconv.ParseInt(hex, 16, 32); err == nil {
			return int(v), nil
		}
	}
	e := newConversionError(argument, discordgo.ApplicationCommandOptionString, converterName(c),
		fmt.Sprintf("%q is not a colour", argument))
	return nil, &e
}

// GuildConverter resolves a guild the bot is in by ID or name.
type GuildConverter struct{}

func (c GuildConverter) Convert(ctx context.Context, cc *Context, argument string) (interface{}, error) {
	s := cc.Bot()

	if snowflakeRe.MatchString(argument) {
		if g, err := s.State.Guild(argument); err == nil {
			return g, nil
		}
		if err := cc.wait(ctx); err != nil {
			return nil, err
		}
		if g, err := s.Guild(argument, discordgo.WithContext(ctx)); err == nil {
			return g, nil
		}
		return nil, notFound(c, argument, discordgo.ApplicationCommandOptionString, "guild")
	}

	for _, g := range s.State.Guilds {
		if g.Name == argument {
			return g, nil
		}
	}
	return nil, notFound(c, argument, discordgo.ApplicationCommandOptionString, "guild")
}

// ObjectConverter accepts any mention or bare snowflake and yields the ID.
// Useful when a command only needs the target's ID, whatever it is.
type ObjectConverter struct{}

func (c ObjectConverter) Convert(_ context.Context, _ *Context, argument string) (interface{}, error) {
	if id := matchID(anyMentionRe, argument); id != "" {
		return id, nil
	}
	if snowflakeRe.MatchString(argument) {
		return argument, nil
	}
	e := newConversionError(argument, discordgo.ApplicationCommandOptionString, converterName(c),
		fmt.Sprintf("%q is not a snowflake or mention", argument))
	return nil, &e
}
