package parser

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// Shared fixture IDs. Snowflake-sized so the ID fast paths match.
const (
	testGuildID   = "100000000000000001"
	testUserID    = "100000000000000002"
	testRoleID    = "100000000000000003"
	testChannelID = "100000000000000004"
	testEmojiID   = "100000000000000005"
	testMessageID = "100000000000000006"
)

// failTransport keeps tests hermetic: any REST fallback fails immediately
// instead of reaching the network.
type failTransport struct{}

func (failTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("no network in tests")
}

func newTestContext(t *testing.T) *Context {
	t.Helper()

	s, err := discordgo.New("Bot test")
	if err != nil {
		t.Fatalf("discordgo.New: %v", err)
	}
	s.Client = &http.Client{Transport: failTransport{}}
	s.State.MaxMessageCount = 10

	guild := &discordgo.Guild{
		ID:   testGuildID,
		Name: "Test Guild",
		Roles: []*discordgo.Role{
			{ID: testRoleID, Name: "Moderators"},
		},
		Emojis: []*discordgo.Emoji{
			{ID: testEmojiID, Name: "partyblob"},
		},
		Channels: []*discordgo.Channel{
			{ID: testChannelID, GuildID: testGuildID, Name: "general", Type: discordgo.ChannelTypeGuildText},
		},
	}
	if err := s.State.GuildAdd(guild); err != nil {
		t.Fatalf("GuildAdd: %v", err)
	}
	member := &discordgo.Member{
		GuildID: testGuildID,
		Nick:    "Moddy",
		User:    &discordgo.User{ID: testUserID, Username: "moderator"},
	}
	if err := s.State.MemberAdd(member); err != nil {
		t.Fatalf("MemberAdd: %v", err)
	}
	msg := &discordgo.Message{ID: testMessageID, ChannelID: testChannelID, GuildID: testGuildID}
	if err := s.State.MessageAdd(msg); err != nil {
		t.Fatalf("MessageAdd: %v", err)
	}

	event := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			GuildID:   testGuildID,
			ChannelID: testChannelID,
		},
	}
	return NewContext(s, event)
}
