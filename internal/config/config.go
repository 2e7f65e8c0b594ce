// Package config loads bot settings from the environment, with an optional .env file.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"^"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LocalPlayer   string `env:"LOCAL_PLAYER" envDefault:"Rhythmbox"`
	Presence      string `env:"PRESENCE" envDefault:"^help for help"`
}

// New reads .env if present, then the process environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, falling back to system environment variables")
	}
	return FromEnv()
}

// FromEnv parses the process environment only.
func FromEnv() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.CommandPrefix == "" {
		return nil, fmt.Errorf("parse config: COMMAND_PREFIX must not be empty")
	}
	return &cfg, nil
}
