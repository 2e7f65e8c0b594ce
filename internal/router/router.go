// Package router turns prefixed chat messages into command invocations.
package router

import (
	"context"
	"strings"
	"unicode"

	"github.com/phate6660/rsphate/internal/chat"
	"github.com/phate6660/rsphate/pkg/cmd"
	"github.com/rs/zerolog/log"
)

// Router dispatches messages to commands in a frozen registry. It holds no
// mutable state and may be called from many goroutines at once.
type Router struct {
	prefix   string
	registry *cmd.Registry
}

// New returns a router for messages starting with prefix.
func New(prefix string, registry *cmd.Registry) *Router {
	return &Router{prefix: prefix, registry: registry}
}

// Parse splits content into a command name and the text after it. ok is
// false when content doesn't start with the prefix or names nothing.
func (r *Router) Parse(content string) (name, rest string, ok bool) {
	if r.prefix == "" || !strings.HasPrefix(content, r.prefix) {
		return "", "", false
	}
	body := content[len(r.prefix):]

	end := strings.IndexFunc(body, unicode.IsSpace)
	if end < 0 {
		end = len(body)
	}
	name = body[:end]
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(body[end:]), true
}

// Handle runs the command named by in, if any. Failures are logged and never
// propagated: a broken command must not stop the next message being served.
func (r *Router) Handle(ctx context.Context, in *chat.Incoming, out chat.Responder) {
	if in == nil || in.AuthorBot {
		return
	}

	name, rest, ok := r.Parse(in.Content)
	if !ok {
		return
	}

	c := r.registry.Get(name)
	if c == nil {
		log.Debug().Str("command", name).Str("channel_id", in.ChannelID).Msg("unknown command")
		return
	}

	args := strings.Fields(rest)
	if err := cmd.ArityOf(c).Check(args); err != nil {
		log.Warn().Err(err).
			Str("command", name).
			Str("channel_id", in.ChannelID).
			Str("user", in.Author).
			Msg("rejected command arguments")
		return
	}

	inv := &cmd.Invocation{
		Args: args,
		Rest: rest,
		Data: &chat.Request{In: in, Out: out},
	}
	if err := c.Run(ctx, inv); err != nil {
		log.Error().Err(err).
			Str("command", name).
			Str("channel_id", in.ChannelID).
			Str("user", in.Author).
			Msg("command failed")
	}
}
