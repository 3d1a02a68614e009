package parser

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Kind names a built-in converter. The enumeration covers the slash-command
// option kinds plus the entity kinds that have no option type of their own
// (message, emoji, invite, and so on) but are still resolvable from a string.
type Kind int

const (
	KindString Kind = iota + 1
	KindInteger
	KindFloat
	KindBoolean
	KindUser
	KindMember
	KindRole
	KindChannel
	KindMentionable
	KindMessage
	KindEmoji
	KindInvite
	KindColour
	KindGuild
	KindObject
)

var kindNames = map[Kind]string{
	KindString:      "string",
	KindInteger:     "integer",
	KindFloat:       "float",
	KindBoolean:     "boolean",
	KindUser:        "user",
	KindMember:      "member",
	KindRole:        "role",
	KindChannel:     "channel",
	KindMentionable: "mentionable",
	KindMessage:     "message",
	KindEmoji:       "emoji",
	KindInvite:      "invite",
	KindColour:      "colour",
	KindGuild:       "guild",
	KindObject:      "object",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Union declares "any of these kinds" for a single argument. A union made up
// of only user/member/role kinds collapses to the mentionable triple, the
// same compound Discord itself offers as an option kind.
type Union []Kind

// AnyOf builds a Union descriptor.
func AnyOf(kinds ...Kind) Union { return Union(kinds) }

// Normalize flattens a heterogeneous descriptor list into an ordered list of
// invocable converters. Accepted descriptor forms: Kind, Union,
// discordgo.ApplicationCommandOptionType, or any value implementing Converter
// or Transformer. An unsupported descriptor fails the whole normalization; no
// partial list is returned. An empty descriptor list defaults to string.
func Normalize(descriptors ...interface{}) ([]Converter, error) {
	if len(descriptors) == 0 {
		descriptors = []interface{}{KindString}
	}
	var out []Converter
	for _, d := range descriptors {
		switch v := d.(type) {
		case Kind:
			convs, err := kindConverters(v)
			if err != nil {
				return nil, err
			}
			out = append(out, convs...)
		case Union:
			convs, err := expandUnion(v)
			if err != nil {
				return nil, err
			}
			out = append(out, convs...)
		case discordgo.ApplicationCommandOptionType:
			kind, err := OptionKind(v)
			if err != nil {
				return nil, err
			}
			convs, err := kindConverters(kind)
			if err != nil {
				return nil, err
			}
			out = append(out, convs...)
		case Converter:
			out = append(out, v)
		case Transformer:
			out = append(out, transformerAdapter{t: v})
		default:
			return nil, fmt.Errorf("parser: %T is not a Kind, option type, Converter or Transformer", d)
		}
	}
	return out, nil
}

// expandUnion resolves a union into concrete converters. The member/role and
// user/role pairings mean "mentionable" and expand to member, role, user in
// that order regardless of how the union was written.
func expandUnion(u Union) ([]Converter, error) {
	if len(u) == 0 {
		return nil, fmt.Errorf("parser: empty union")
	}
	mentionable := true
	for _, k := range u {
		if k != KindUser && k != KindMember && k != KindRole {
			mentionable = false
			break
		}
	}
	if mentionable {
		return kindConverters(KindMentionable)
	}
	var out []Converter
	for _, k := range u {
		convs, err := kindConverters(k)
		if err != nil {
			return nil, err
		}
		out = append(out, convs...)
	}
	return out, nil
}

// kindConverters maps a Kind to its converter(s). Only the mentionable
// compound expands to more than one.
func kindConverters(k Kind) ([]Converter, error) {
	switch k {
	case KindString:
		return []Converter{StringConverter{}}, nil
	case KindInteger:
		return []Converter{IntegerConverter{}}, nil
	case KindFloat:
		return []Converter{FloatConverter{}}, nil
	case KindBoolean:
		return []Converter{BooleanConverter{}}, nil
	case KindUser:
		return []Converter{UserConverter{}}, nil
	case KindMember:
		return []Converter{MemberConverter{}}, nil
	case KindRole:
		return []Converter{RoleConverter{}}, nil
	case KindChannel:
		return []Converter{ChannelConverter{}}, nil
	case KindMentionable:
		return []Converter{MemberConverter{}, RoleConverter{}, UserConverter{}}, nil
	case KindMessage:
		return []Converter{MessageConverter{}}, nil
	case KindEmoji:
		return []Converter{EmojiConverter{}}, nil
	case KindInvite:
		return []Converter{InviteConverter{}}, nil
	case KindColour:
		return []Converter{ColourConverter{}}, nil
	case KindGuild:
		return []Converter{GuildConverter{}}, nil
	case KindObject:
		return []Converter{ObjectConverter{}}, nil
	default:
		return nil, fmt.Errorf("parser: unknown kind %v", k)
	}
}

// OptionKind maps a slash-command option type to the Kind resolved for it.
// The user option maps to the member converter, mirroring how interactions
// hand you a member when invoked in a guild. Attachments cannot be converted
// from a string at all.
func OptionKind(t discordgo.ApplicationCommandOptionType) (Kind, error) {
	switch t {
	case discordgo.ApplicationCommandOptionString:
		return KindString, nil
	case discordgo.ApplicationCommandOptionInteger:
		return KindInteger, nil
	case discordgo.ApplicationCommandOptionNumber:
		return KindFloat, nil
	case discordgo.ApplicationCommandOptionBoolean:
		return KindBoolean, nil
	case discordgo.ApplicationCommandOptionUser:
		return KindMember, nil
	case discordgo.ApplicationCommandOptionRole:
		return KindRole, nil
	case discordgo.ApplicationCommandOptionChannel:
		return KindChannel, nil
	case discordgo.ApplicationCommandOptionMentionable:
		return KindMentionable, nil
	case discordgo.ApplicationCommandOptionAttachment:
		return 0, fmt.Errorf("parser: attachments cannot be converted from a string")
	default:
		return 0, fmt.Errorf("parser: unknown option type %v", t)
	}
}
