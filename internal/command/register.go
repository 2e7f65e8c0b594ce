package command

import (
	"github.com/phate6660/rsphate/internal/middleware"
	"github.com/phate6660/rsphate/internal/nowplaying"
	"github.com/phate6660/rsphate/pkg/cmd"
)

// Deps are the collaborators the commands need.
type Deps struct {
	Prefix     string
	NowPlaying nowplaying.Source
}

// NewRegistry builds the frozen command table.
func NewRegistry(deps Deps) (*cmd.Registry, error) {
	reg := cmd.NewRegistry()

	commands := []cmd.Command{
		&GitCommand{},
		&WWWCommand{},
		&NowPlayingCommand{Source: deps.NowPlaying},
		&HelpCommand{Registry: reg, Prefix: deps.Prefix},
	}
	for _, c := range commands {
		if err := reg.Register(c,
			middleware.WithCommandLogger(),
			middleware.WithRecover(),
		); err != nil {
			return nil, err
		}
	}

	reg.Freeze()
	return reg, nil
}
