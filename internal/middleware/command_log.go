package middleware

import (
	"context"
	"time"

	"github.com/phate6660/rsphate/internal/chat"
	"github.com/phate6660/rsphate/pkg/cmd"
	"github.com/rs/zerolog/log"
)

// WithCommandLogger logs every command execution with its outcome.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			start := time.Now()
			err := c.Run(ctx, inv)

			evt := log.Info()
			if err != nil {
				evt = log.Error().Err(err)
			}
			if req, ok := inv.Data.(*chat.Request); ok && req.In != nil {
				evt = evt.Str("channel_id", req.In.ChannelID).
					Str("guild_id", req.In.GuildID).
					Str("user", req.In.Author)
			}
			evt.Str("command", c.Name()).
				Strs("args", inv.Args).
				Dur("took", time.Since(start)).
				Msg("command executed")

			return err
		})
	}
}
