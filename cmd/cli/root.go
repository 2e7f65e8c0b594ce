package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/phate6660/rsphate/internal/chat"
	"github.com/phate6660/rsphate/internal/command"
	"github.com/phate6660/rsphate/internal/logger"
	"github.com/phate6660/rsphate/internal/nowplaying"
	"github.com/phate6660/rsphate/internal/router"
	"github.com/spf13/cobra"
)

type options struct {
	prefix      string
	localPlayer string
	logLevel    string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	var source nowplaying.Source

	cmd := &cobra.Command{
		Use:           "rsphate-cli",
		Short:         "Run rsphate bot commands without Discord",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(opts.logLevel, cmd.ErrOrStderr())
			if source == nil {
				source = nowplaying.NewMPRIS(opts.localPlayer)
			}
		},
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&opts.prefix, "prefix", "^", "Command prefix")
	cmd.PersistentFlags().StringVar(&opts.localPlayer, "local-player", nowplaying.DefaultLocalPlayer, "Player whose cover art is a local file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")

	cmd.AddCommand(
		newExecCmd(opts, func() nowplaying.Source { return source }),
		newNowPlayingCmd(func() nowplaying.Source { return source }),
	)
	return cmd
}

func newExecCmd(opts *options, source func() nowplaying.Source) *cobra.Command {
	return &cobra.Command{
		Use:     "exec <message...>",
		Short:   "Route a chat message through the command router",
		Example: `  rsphate-cli exec '^git codeberg Phate6660/musinfo'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := command.NewRegistry(command.Deps{Prefix: opts.prefix, NowPlaying: source()})
			if err != nil {
				return err
			}
			rt := router.New(opts.prefix, registry)

			out := cmd.OutOrStdout()
			in := &chat.Incoming{ID: "cli", ChannelID: "cli", Author: "cli", Content: strings.Join(args, " ")}
			rt.Handle(cmd.Context(), in, chat.ResponderFunc(func(_ context.Context, msg *chat.Message) error {
				return render(out, msg)
			}))
			return nil
		},
	}
}

func newNowPlayingCmd(source func() nowplaying.Source) *cobra.Command {
	return &cobra.Command{
		Use:   "nowplaying",
		Short: "Print what the active media player is playing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := source().Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), &chat.Message{Embed: snap.Embed()})
		},
	}
}

// render prints a message the way a terminal can show it.
func render(w io.Writer, msg *chat.Message) error {
	var sb strings.Builder
	if msg.Content != "" {
		sb.WriteString(msg.Content + "\n")
	}
	if e := msg.Embed; e != nil {
		sb.WriteString("# " + e.Title + "\n")
		if e.URL != "" {
			sb.WriteString(e.URL + "\n")
		}
		if e.Description != "" {
			sb.WriteString(e.Description + "\n")
		}
		for _, f := range e.Fields {
			sb.WriteString(fmt.Sprintf("\n## %s\n%s\n", f.Name, f.Value))
		}
		if e.Image != nil {
			img := e.Image.URL
			if e.Image.Kind == chat.LocalFile {
				img = e.Image.Path
			}
			sb.WriteString("\nimage: " + img + "\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
