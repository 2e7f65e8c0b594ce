// Package discord connects the command router to the Discord gateway.
package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/phate6660/rsphate/internal/chat"
	"github.com/rs/zerolog/log"
)

// messageSender is the part of *discordgo.Session used to post messages.
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Bot is a Discord gateway client implementing chat.Gateway.
type Bot struct {
	token    string
	presence string

	dg     *discordgo.Session
	sender messageSender

	mu      sync.RWMutex
	ctx     context.Context
	handler func(ctx context.Context, in *chat.Incoming, r chat.Responder)
}

var _ chat.Gateway = (*Bot)(nil)

// NewBot returns a bot that sets presence as its "playing" status once connected.
func NewBot(token, presence string) *Bot {
	return &Bot{token: token, presence: presence, ctx: context.Background()}
}

// OnMessage sets the function every incoming message is handed to. Call it
// before Open.
func (b *Bot) OnMessage(fn func(ctx context.Context, in *chat.Incoming, r chat.Responder)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handler = fn
}

// Open creates the session and connects to the gateway. Handlers run with ctx.
func (b *Bot) Open(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.mu.Lock()
	b.dg = dg
	b.sender = dg
	b.ctx = ctx
	b.mu.Unlock()

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	return nil
}

// Run opens the session and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Open(ctx); err != nil {
		return err
	}
	defer b.Close()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, closing gateway session")
	return nil
}

// Close disconnects from the gateway.
func (b *Bot) Close() error {
	b.mu.RLock()
	dg := b.dg
	b.mu.RUnlock()
	if dg == nil {
		return nil
	}
	return dg.Close()
}

// SetPresence updates the bot's "playing" status.
func (b *Bot) SetPresence(status string) error {
	b.mu.RLock()
	dg := b.dg
	b.mu.RUnlock()
	if dg == nil {
		return fmt.Errorf("set presence: session not open")
	}
	return dg.UpdateGameStatus(0, status)
}

// Send posts msg to channelID.
func (b *Bot) Send(_ context.Context, channelID string, msg *chat.Message) error {
	return b.send(channelID, msg, nil)
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if err := b.SetPresence(b.presence); err != nil {
		log.Warn().Err(err).Msg("could not set presence")
	}
	username := ""
	if r.User != nil {
		username = r.User.Username
	}
	log.Info().Str("user", username).Int("guilds", len(r.Guilds)).Msg("discord bot is running")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	selfID := ""
	if s != nil && s.State != nil && s.State.User != nil {
		selfID = s.State.User.ID
	}
	b.handleMessage(selfID, m)
}

// handleMessage converts a gateway event and hands it to the handler.
// discordgo runs each event on its own goroutine, so a slow command only
// holds up itself.
func (b *Bot) handleMessage(selfID string, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.ID == selfID {
		return
	}

	b.mu.RLock()
	handler, ctx := b.handler, b.ctx
	b.mu.RUnlock()
	if handler == nil {
		log.Warn().Str("channel_id", m.ChannelID).Msg("message received but no handler set, dropping")
		return
	}

	in := &chat.Incoming{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		AuthorID:  m.Author.ID,
		Author:    m.Author.Username,
		AuthorBot: m.Author.Bot,
		Content:   m.Content,
	}
	ref := m.Reference()
	handler(ctx, in, chat.ResponderFunc(func(_ context.Context, msg *chat.Message) error {
		if msg.Reply {
			return b.send(m.ChannelID, msg, ref)
		}
		return b.send(m.ChannelID, msg, nil)
	}))
}
