package parser

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestMemberConverter(t *testing.T) {
	cc := newTestContext(t)
	conv := MemberConverter{}

	for name, arg := range map[string]string{
		"mention":      "<@" + testUserID + ">",
		"nick mention": "<@!" + testUserID + ">",
		"bare id":      testUserID,
		"username":     "moderator",
		"nick":         "Moddy",
		"at username":  "@moderator",
	} {
		t.Run(name, func(t *testing.T) {
			v, err := conv.Convert(context.Background(), cc, arg)
			if err != nil {
				t.Fatalf("Convert(%q): %v", arg, err)
			}
			m, ok := v.(*discordgo.Member)
			if !ok {
				t.Fatalf("expected *discordgo.Member, got %T", v)
			}
			if m.User.ID != testUserID {
				t.Fatalf("expected user %s, got %s", testUserID, m.User.ID)
			}
		})
	}

	_, err := conv.Convert(context.Background(), cc, "nobody")
	if err == nil {
		t.Fatal("expected an unknown name to fail")
	}
	if _, ok := AsConversionError(err); !ok {
		t.Fatalf("expected a ConversionError, got %T", err)
	}
}

func TestUserConverter(t *testing.T) {
	cc := newTestContext(t)
	conv := UserConverter{}

	v, err := conv.Convert(context.Background(), cc, "<@"+testUserID+">")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	u, ok := v.(*discordgo.User)
	if !ok {
		t.Fatalf("expected *discordgo.User, got %T", v)
	}
	if u.Username != "moderator" {
		t.Fatalf("expected username moderator, got %s", u.Username)
	}

	if v, err = conv.Convert(context.Background(), cc, "moderator"); err != nil {
		t.Fatalf("Convert by name: %v", err)
	}
	if v.(*discordgo.User).ID != testUserID {
		t.Fatal("expected name lookup to hit the cached member")
	}
}

func TestRoleConverter(t *testing.T) {
	cc := newTestContext(t)
	conv := RoleConverter{}

	for name, arg := range map[string]string{
		"mention": "<@&" + testRoleID + ">",
		"bare id": testRoleID,
		"name":    "Moderators",
	} {
		t.Run(name, func(t *testing.T) {
			v, err := conv.Convert(context.Background(), cc, arg)
			if err != nil {
				t.Fatalf("Convert(%q): %v", arg, err)
			}
			if v.(*discordgo.Role).ID != testRoleID {
				t.Fatalf("expected role %s, got %v", testRoleID, v)
			}
		})
	}
}

func TestChannelConverter(t *testing.T) {
	cc := newTestContext(t)
	conv := ChannelConverter{}

	for name, arg := range map[string]string{
		"mention":   "<#" + testChannelID + ">",
		"bare id":   testChannelID,
		"name":      "general",
		"hash name": "#general",
	} {
		t.Run(name, func(t *testing.T) {
			v, err := conv.Convert(context.Background(), cc, arg)
			if err != nil {
				t.Fatalf("Convert(%q): %v", arg, err)
			}
			if v.(*discordgo.Channel).ID != testChannelID {
				t.Fatalf("expected channel %s, got %v", testChannelID, v)
			}
		})
	}
}

func TestMessageConverter(t *testing.T) {
	cc := newTestContext(t)
	conv := MessageConverter{}

	link := "https://discord.com/channels/" + testGuildID + "/" + testChannelID + "/" + testMessageID
	for name, arg := range map[string]string{
		"jump link":          link,
		"channel-message id": testChannelID + "-" + testMessageID,
		"bare id":            testMessageID,
	} {
		t.Run(name, func(t *testing.T) {
			v, err := conv.Convert(context.Background(), cc, arg)
			if err != nil {
				t.Fatalf("Convert(%q): %v", arg, err)
			}
			if v.(*discordgo.Message).ID != testMessageID {
				t.Fatalf("expected message %s, got %v", testMessageID, v)
			}
		})
	}

	if _, err := conv.Convert(context.Background(), cc, "not a message"); err == nil {
		t.Fatal("expected junk input to fail")
	}
}

func TestEmojiConverter(t *testing.T) {
	cc := newTestContext(t)
	conv := EmojiConverter{}

	v, err := conv.Convert(context.Background(), cc, "<:partyblob:"+testEmojiID+">")
	if err != nil {
		t.Fatalf("Convert full form: %v", err)
	}
	if v.(*discordgo.Emoji).ID != testEmojiID {
		t.Fatal("expected the cached guild emoji")
	}

	if v, err = conv.Convert(context.Background(), cc, "partyblob"); err != nil {
		t.Fatalf("Convert by name: %v", err)
	}
	if v.(*discordgo.Emoji).ID != testEmojiID {
		t.Fatal("expected name lookup to hit the cached emoji")
	}

	// A foreign emoji still parses into a usable value.
	v, err = conv.Convert(context.Background(), cc, "<a:dance:200000000000000001>")
	if err != nil {
		t.Fatalf("Convert foreign form: %v", err)
	}
	e := v.(*discordgo.Emoji)
	if e.ID != "200000000000000001" || e.Name != "dance" || !e.Animated {
		t.Fatalf("unexpected parsed emoji: %+v", e)
	}

	if _, err := conv.Convert(context.Background(), cc, "shrug"); err == nil {
		t.Fatal("expected an unknown name to fail")
	}
}

func TestGuildConverter(t *testing.T) {
	cc := newTestContext(t)
	conv := GuildConverter{}

	v, err := conv.Convert(context.Background(), cc, testGuildID)
	if err != nil {
		t.Fatalf("Convert by id: %v", err)
	}
	if v.(*discordgo.Guild).Name != "Test Guild" {
		t.Fatal("expected the cached guild")
	}

	if v, err = conv.Convert(context.Background(), cc, "Test Guild"); err != nil {
		t.Fatalf("Convert by name: %v", err)
	}
	if v.(*discordgo.Guild).ID != testGuildID {
		t.Fatal("expected name lookup to hit the cached guild")
	}
}
