package middleware

import (
	"context"
	"fmt"

	"github.com/phate6660/rsphate/pkg/cmd"
)

// WithRecover turns a panic inside a command into an error so one bad
// command can't take down the event loop.
func WithRecover() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("command %s panicked: %v", c.Name(), r)
				}
			}()
			return c.Run(ctx, inv)
		})
	}
}
