package command

import (
	"context"
	"fmt"

	"github.com/phate6660/rsphate/internal/catalog"
	"github.com/phate6660/rsphate/internal/chat"
	"github.com/phate6660/rsphate/pkg/cmd"
)

type WWWCommand struct{}

func (c *WWWCommand) Name() string { return "www" }
func (c *WWWCommand) Description() string {
	return "Bot will reply with pretty embed explaining why the topic is bad."
}
func (c *WWWCommand) Usage() string      { return "topic" }
func (c *WWWCommand) Group() string      { return GroupGeneral }
func (c *WWWCommand) Arity() cmd.Arity   { return cmd.Rest() }
func (c *WWWCommand) Examples() []string { return catalog.Topics() }

func (c *WWWCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, err := request(inv)
	if err != nil {
		return err
	}

	msg := &chat.Message{Content: "unknown query: " + inv.Rest, Reply: true}
	if entry, ok := catalog.Lookup(inv.Rest); ok {
		msg = &chat.Message{Embed: entry.Embed()}
	}

	if err := req.Send(ctx, msg); err != nil {
		return fmt.Errorf("send www reply for %q: %w", inv.Rest, err)
	}
	return nil
}
