// Package nowplaying reads what the active desktop media player is playing
// and turns it into a chat-ready snapshot.
package nowplaying

import (
	"context"
	"errors"
	"fmt"

	"github.com/phate6660/rsphate/internal/chat"
)

var (
	// ErrConnection means the session bus could not be reached.
	ErrConnection = errors.New("could not connect to D-Bus")
	// ErrNoActivePlayer means no MPRIS player is on the bus.
	ErrNoActivePlayer = errors.New("could not find any player")
	// ErrInvalidArtwork means the local player's art URL is too short to carry a file:// prefix.
	ErrInvalidArtwork = errors.New("invalid artwork url")
)

// MissingFieldError reports a metadata field the player did not provide.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing metadata field %q", e.Field)
}

// DefaultLocalPlayer is the player whose art URLs are local cache paths.
const DefaultLocalPlayer = "Rhythmbox"

// fileSchemeLen is the length of "file://".
const fileSchemeLen = 7

// Snapshot is what the player reports at one point in time.
type Snapshot struct {
	Player  string
	Artist  string
	Album   string
	Title   string
	Artwork chat.Attachment
}

// Source queries a media player.
type Source interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Normalize turns an art URL into an attachment. The local player stores
// cover art as extension-less files behind a file:// URL, so the scheme is
// cut off and ".jpg" appended; every other player hands out a usable URL.
func Normalize(identity, artURL, localPlayer string) (chat.Attachment, error) {
	if identity != localPlayer {
		return chat.NewRemoteURL(artURL), nil
	}
	if len(artURL) < fileSchemeLen {
		return chat.Attachment{}, fmt.Errorf("%w: %q", ErrInvalidArtwork, artURL)
	}
	return chat.NewLocalFile(artURL[fileSchemeLen:] + ".jpg"), nil
}

// Embed builds the now-playing message.
func (s *Snapshot) Embed() *chat.Embed {
	artwork := s.Artwork
	return &chat.Embed{
		Title: "What Is Phate Listening To Right Now",
		URL:   "https://libre.fm/user/phate6660",
		Color: 0x9B59B6,
		Fields: []chat.Field{
			{Name: "Player", Value: s.Player},
			{Name: "Title", Value: s.Title},
			{Name: "Album", Value: s.Album},
			{Name: "Artist", Value: s.Artist},
		},
		Image: &artwork,
	}
}
