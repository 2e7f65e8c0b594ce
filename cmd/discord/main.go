// cmd/discord/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/phate6660/rsphate/internal/chat"
	"github.com/phate6660/rsphate/internal/command"
	"github.com/phate6660/rsphate/internal/config"
	"github.com/phate6660/rsphate/internal/discord"
	"github.com/phate6660/rsphate/internal/logger"
	"github.com/phate6660/rsphate/internal/nowplaying"
	"github.com/phate6660/rsphate/internal/router"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		logger.Setup("info", nil)
		log.Fatal().Err(err).Msg("could not load config")
	}
	logger.Setup(cfg.LogLevel, nil)

	log.Info().Str("prefix", cfg.CommandPrefix).Msg("starting rsphate bot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry, err := command.NewRegistry(command.Deps{
		Prefix:     cfg.CommandPrefix,
		NowPlaying: nowplaying.NewMPRIS(cfg.LocalPlayer),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not register commands")
	}
	rt := router.New(cfg.CommandPrefix, registry)

	bot := discord.NewBot(cfg.DiscordToken, cfg.Presence)
	var gateway chat.Gateway = bot
	gateway.OnMessage(rt.Handle)

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
		log.Info().Str("signal", s.String()).Msg("received signal, shutting down...")
		cancel()
		<-errCh
	case err, ok := <-errCh:
		if ok && err != nil {
			log.Fatal().Err(err).Msg("discord bot error")
		}
	}

	log.Info().Msg("discord bot exited cleanly")
}
