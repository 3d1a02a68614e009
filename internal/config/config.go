package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment. A local .env file is honored when
// present, system environment variables win otherwise.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	// GuildID scopes slash-command registration to one guild. Empty registers
	// commands globally (slower to propagate).
	GuildID     string `env:"GUILD_ID"`
	StoragePath string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	// LogPath enables a rotated log file next to console output when set.
	LogPath string `env:"LOG_PATH"`
}

// New loads .env (if any) and parses the environment into a Config.
func New() (*Config, error) {
	_ = godotenv.Load() // no .env file is fine

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
