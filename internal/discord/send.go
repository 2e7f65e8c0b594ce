package discord

import (
	"fmt"
	"io"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/phate6660/rsphate/internal/chat"
)

func (b *Bot) send(channelID string, msg *chat.Message, ref *discordgo.MessageReference) error {
	b.mu.RLock()
	sender := b.sender
	b.mu.RUnlock()
	if sender == nil {
		return fmt.Errorf("send to %s: session not open", channelID)
	}

	data, closeFiles, err := toMessageSend(msg, openFile)
	if err != nil {
		return err
	}
	defer closeFiles()
	data.Reference = ref

	if _, err := sender.ChannelMessageSendComplex(channelID, data); err != nil {
		return fmt.Errorf("send to %s: %w", channelID, err)
	}
	return nil
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// toMessageSend converts msg into a discordgo payload. A local-file image is
// opened with open and attached under its base name so the embed's
// attachment:// reference resolves; the returned func closes it.
func toMessageSend(msg *chat.Message, open func(string) (io.ReadCloser, error)) (*discordgo.MessageSend, func(), error) {
	data := &discordgo.MessageSend{Content: msg.Content}
	closeFiles := func() {}

	if msg.Embed == nil {
		return data, closeFiles, nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       msg.Embed.Title,
		Description: msg.Embed.Description,
		URL:         msg.Embed.URL,
		Color:       msg.Embed.Color,
	}
	for _, f := range msg.Embed.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	if img := msg.Embed.Image; img != nil {
		embed.Image = &discordgo.MessageEmbedImage{URL: img.Reference()}
		if img.Kind == chat.LocalFile {
			rc, err := open(img.Path)
			if err != nil {
				return nil, closeFiles, fmt.Errorf("open cover art: %w", err)
			}
			closeFiles = func() { rc.Close() }
			data.Files = []*discordgo.File{{
				Name:        img.FileName(),
				ContentType: "image/jpeg",
				Reader:      rc,
			}}
		}
	}

	data.Embeds = []*discordgo.MessageEmbed{embed}
	return data, closeFiles, nil
}
