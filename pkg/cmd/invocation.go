// Package cmd provides a transport-agnostic command core: a command is something
// with a name, description, and Run(ctx, invocation). How it is triggered
// (Discord prefix message, CLI) is defined by adapters that wrap this.
package cmd

import "context"

// Invocation carries the input any command runner can pass. Args holds the
// whitespace-separated tokens after the command name, Rest the same text as a
// single trimmed string. Adapters set Data to their reply channel (a
// chat.Responder for both the Discord and CLI adapters).
type Invocation struct {
	Args []string
	Rest string
	Data interface{}
}

// Command is the universal contract: identity plus execution.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// Documented is implemented by commands that carry help text.
type Documented interface {
	Usage() string
	Examples() []string
	Group() string
}

// ArityChecker is implemented by commands that constrain their argument count.
type ArityChecker interface {
	Arity() Arity
}
