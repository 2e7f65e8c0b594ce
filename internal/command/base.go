// Package command holds the bot's chat commands. Each command is a
// cmd.Command that replies through the chat.Request it finds in the invocation.
package command

import (
	"fmt"

	"github.com/phate6660/rsphate/internal/chat"
	"github.com/phate6660/rsphate/pkg/cmd"
)

// GroupGeneral is where every user-facing command lives.
const GroupGeneral = "General"

func request(inv *cmd.Invocation) (*chat.Request, error) {
	req, ok := inv.Data.(*chat.Request)
	if !ok || req == nil || req.Out == nil {
		return nil, fmt.Errorf("invocation carries no chat request (got %T)", inv.Data)
	}
	return req, nil
}
