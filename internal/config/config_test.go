package config

import (
	"os"
	"testing"
)

// unset clears a variable for the test; t.Setenv first so the original value
// is restored afterwards.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	unset(t, "GUILD_ID")
	unset(t, "STORAGE_PATH")
	unset(t, "LOG_LEVEL")
	unset(t, "LOG_PATH")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.DiscordToken != "test-token" {
		t.Fatalf("DiscordToken = %q", cfg.DiscordToken)
	}
	if cfg.StoragePath != "datastore.json" {
		t.Fatalf("StoragePath = %q, want datastore.json", cfg.StoragePath)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.GuildID != "" || cfg.LogPath != "" {
		t.Fatalf("expected optional fields to stay empty, got %+v", cfg)
	}
}

func TestNewRequiresToken(t *testing.T) {
	unset(t, "DISCORD_TOKEN")

	if _, err := New(); err == nil {
		t.Fatal("expected a missing token to fail")
	}
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("GUILD_ID", "100000000000000001")
	t.Setenv("STORAGE_PATH", "/tmp/custom.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.GuildID != "100000000000000001" {
		t.Fatalf("GuildID = %q", cfg.GuildID)
	}
	if cfg.StoragePath != "/tmp/custom.json" {
		t.Fatalf("StoragePath = %q", cfg.StoragePath)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}
