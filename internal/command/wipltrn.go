package command

import (
	"context"
	"fmt"

	"github.com/phate6660/rsphate/internal/chat"
	"github.com/phate6660/rsphate/internal/nowplaying"
	"github.com/phate6660/rsphate/pkg/cmd"
)

// NowPlayingCommand posts what the active media player is playing. Player
// errors are returned for logging only; nothing is said in chat.
type NowPlayingCommand struct {
	Source nowplaying.Source
}

func (c *NowPlayingCommand) Name() string { return "wipltrn" }
func (c *NowPlayingCommand) Description() string {
	return "Bot will reply with pretty embed containing current music info and cover art of what Phate is listening to."
}
func (c *NowPlayingCommand) Usage() string      { return "" }
func (c *NowPlayingCommand) Group() string      { return GroupGeneral }
func (c *NowPlayingCommand) Examples() []string { return nil }

func (c *NowPlayingCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, err := request(inv)
	if err != nil {
		return err
	}

	snap, err := c.Source.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("query media player: %w", err)
	}

	if err := req.Send(ctx, &chat.Message{Embed: snap.Embed()}); err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}
	return nil
}
