// Package chat holds the transport-neutral message model shared by command
// handlers and the gateway adapters (Discord, CLI).
package chat

import (
	"context"
	"path"
)

// AttachmentKind tells a gateway whether it has to upload bytes or can just
// point at a URL.
type AttachmentKind int

const (
	RemoteURL AttachmentKind = iota
	LocalFile
)

// Attachment is a reference to image content.
type Attachment struct {
	Kind AttachmentKind
	Path string // set for LocalFile
	URL  string // set for RemoteURL
}

// NewLocalFile returns an attachment that must be uploaded from path.
func NewLocalFile(p string) Attachment {
	return Attachment{Kind: LocalFile, Path: p}
}

// NewRemoteURL returns an attachment already reachable at url.
func NewRemoteURL(url string) Attachment {
	return Attachment{Kind: RemoteURL, URL: url}
}

// FileName is the last path segment of a local file, empty for remote URLs.
func (a Attachment) FileName() string {
	if a.Kind != LocalFile {
		return ""
	}
	return path.Base(a.Path)
}

// Reference is what an embed points its image at: the short
// attachment://<name> form for uploads, the URL itself otherwise.
func (a Attachment) Reference() string {
	if a.Kind == LocalFile {
		return "attachment://" + a.FileName()
	}
	return a.URL
}

// Field is one titled section of an embed.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a rich message payload.
type Embed struct {
	Title       string
	Description string
	URL         string
	Color       int
	Fields      []Field
	Image       *Attachment
}

// Message is what a command sends back to the originating channel. Exactly
// one of Content or Embed is normally set.
type Message struct {
	Content string
	Embed   *Embed
	// Reply sends the message as a reply to the triggering message.
	Reply bool
}

// Text returns a plain text message.
func Text(content string) *Message {
	return &Message{Content: content}
}

// Incoming is a chat message received from a gateway.
type Incoming struct {
	ID        string
	ChannelID string
	GuildID   string
	AuthorID  string
	Author    string
	AuthorBot bool
	Content   string
}

// Responder sends messages back to the channel an Incoming came from.
type Responder interface {
	Send(ctx context.Context, msg *Message) error
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(ctx context.Context, msg *Message) error

func (f ResponderFunc) Send(ctx context.Context, msg *Message) error { return f(ctx, msg) }

// Gateway is the chat service connection. The Discord adapter implements it;
// tests substitute their own.
type Gateway interface {
	Open(ctx context.Context) error
	Close() error
	OnMessage(fn func(ctx context.Context, in *Incoming, r Responder))
	Send(ctx context.Context, channelID string, msg *Message) error
	SetPresence(status string) error
}

// Request pairs an incoming message with the way back to its channel. Adapters
// put it in cmd.Invocation.Data.
type Request struct {
	In  *Incoming
	Out Responder
}

// Send replies to the originating channel.
func (r *Request) Send(ctx context.Context, msg *Message) error {
	return r.Out.Send(ctx, msg)
}
