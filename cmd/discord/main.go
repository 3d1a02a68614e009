package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "slash-parser/internal/command/about"
	_ "slash-parser/internal/command/sum"
	_ "slash-parser/internal/command/tags"
	_ "slash-parser/internal/command/whois"

	"slash-parser/internal/config"
	"slash-parser/internal/discord"
	"slash-parser/internal/logging"
	"slash-parser/internal/storage"
	v "slash-parser/internal/version"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fallback := logging.New("info", "")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logging.New(cfg.LogLevel, cfg.LogPath)
	log.Info().Str("app", v.AppName).Str("version", v.Version).Msg("starting bot")

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot := discord.NewBot(cfg, store, log)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("bot error")
		}
		cancel()
	}

	log.Info().Msg("bot exited cleanly")
}
