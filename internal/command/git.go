package command

import (
	"context"
	"fmt"

	"github.com/phate6660/rsphate/internal/chat"
	"github.com/phate6660/rsphate/internal/gitlink"
	"github.com/phate6660/rsphate/pkg/cmd"
)

type GitCommand struct{}

func (c *GitCommand) Name() string { return "git" }
func (c *GitCommand) Description() string {
	return "Bot will parse the input and output the correct full link to the repo."
}
func (c *GitCommand) Usage() string    { return "site user/repo" }
func (c *GitCommand) Group() string    { return GroupGeneral }
func (c *GitCommand) Arity() cmd.Arity { return cmd.Exact(2) }
func (c *GitCommand) Examples() []string {
	return []string{
		"github Phate6660/rsfetch",
		"gitlab ArcticTheRogue/asgl",
		"codeberg Phate6660/musinfo",
		"github phate/rsPhate-2.0",
	}
}

func (c *GitCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, err := request(inv)
	if err != nil {
		return err
	}

	link := gitlink.Format(inv.Args[0], inv.Args[1])
	if err := req.Send(ctx, chat.Text(link)); err != nil {
		return fmt.Errorf("could not push full git repo link: %w", err)
	}
	return nil
}
