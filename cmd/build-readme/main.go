// cmd/build-readme regenerates README.md from README.md.tmpl and the command registry.
package main

import (
	"os"

	"github.com/phate6660/rsphate/internal/command"
	"github.com/phate6660/rsphate/internal/docs"
	"github.com/phate6660/rsphate/internal/logger"
	"github.com/rs/zerolog/log"
)

const prefix = "^"

func main() {
	logger.Setup("info", nil)

	registry, err := command.NewRegistry(command.Deps{Prefix: prefix})
	if err != nil {
		log.Fatal().Err(err).Msg("could not build command registry")
	}

	tmpl, err := os.ReadFile("README.md.tmpl")
	if err != nil {
		log.Fatal().Err(err).Msg("could not read README.md.tmpl")
	}

	out, err := docs.Render(string(tmpl), registry, prefix)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	if err := os.WriteFile("README.md", out, 0644); err != nil {
		log.Fatal().Err(err).Msg("could not write README.md")
	}
	log.Info().Msg("README.md updated")
}
