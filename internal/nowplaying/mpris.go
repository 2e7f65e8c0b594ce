package nowplaying

import (
	"context"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog/log"
)

const (
	mprisPrefix   = "org.mpris.MediaPlayer2."
	mprisPath     = "/org/mpris/MediaPlayer2"
	rootIface     = "org.mpris.MediaPlayer2"
	playerIface   = "org.mpris.MediaPlayer2.Player"
	propertiesGet = "org.freedesktop.DBus.Properties.Get"
	listNames     = "org.freedesktop.DBus.ListNames"
	statusPlaying = "Playing"
	statusPaused  = "Paused"
	fieldArtist   = "xesam:artist"
	fieldAlbum    = "xesam:album"
	fieldTitle    = "xesam:title"
	fieldArtURL   = "mpris:artUrl"
)

// bus is the slice of a D-Bus connection the MPRIS source needs.
type bus interface {
	ListNames(ctx context.Context) ([]string, error)
	Property(ctx context.Context, dest, iface, prop string) (dbus.Variant, error)
	Close() error
}

// MPRIS reads the active player over the session bus. A fresh connection is
// opened for every Snapshot call.
type MPRIS struct {
	localPlayer string
	dial        func() (bus, error)
}

// NewMPRIS returns a Source for the session bus. localPlayer names the player
// whose art URLs are local files; empty means DefaultLocalPlayer.
func NewMPRIS(localPlayer string) *MPRIS {
	if localPlayer == "" {
		localPlayer = DefaultLocalPlayer
	}
	return &MPRIS{localPlayer: localPlayer, dial: dialSession}
}

// Snapshot implements Source.
func (m *MPRIS) Snapshot(ctx context.Context) (*Snapshot, error) {
	conn, err := m.dial()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer conn.Close()

	name, err := findActive(ctx, conn)
	if err != nil {
		return nil, err
	}

	identity, err := stringProperty(ctx, conn, name, rootIface, "Identity")
	if err != nil {
		return nil, fmt.Errorf("read identity of %s: %w", name, err)
	}

	v, err := conn.Property(ctx, name, playerIface, "Metadata")
	if err != nil {
		return nil, fmt.Errorf("could not get metadata: %w", err)
	}
	meta, ok := v.Value().(map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("could not get metadata: unexpected type %s", v.Signature())
	}

	log.Debug().Str("bus_name", name).Str("identity", identity).Msg("read player metadata")

	return snapshotFrom(identity, meta, m.localPlayer)
}

// findActive picks the first playing player, else the first paused one,
// else whichever player answered first.
func findActive(ctx context.Context, conn bus) (string, error) {
	names, err := conn.ListNames(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: list names: %v", ErrConnection, err)
	}

	var players []string
	for _, n := range names {
		if strings.HasPrefix(n, mprisPrefix) {
			players = append(players, n)
		}
	}
	if len(players) == 0 {
		return "", ErrNoActivePlayer
	}

	var paused string
	for _, p := range players {
		status, err := stringProperty(ctx, conn, p, playerIface, "PlaybackStatus")
		if err != nil {
			log.Debug().Err(err).Str("bus_name", p).Msg("skipping player without playback status")
			continue
		}
		switch status {
		case statusPlaying:
			return p, nil
		case statusPaused:
			if paused == "" {
				paused = p
			}
		}
	}
	if paused != "" {
		return paused, nil
	}
	return players[0], nil
}

func snapshotFrom(identity string, meta map[string]dbus.Variant, localPlayer string) (*Snapshot, error) {
	var artists []string
	if v, ok := meta[fieldArtist]; ok {
		artists, _ = v.Value().([]string)
	}
	if len(artists) == 0 || artists[0] == "" {
		return nil, &MissingFieldError{Field: fieldArtist}
	}

	album, err := metaString(meta, fieldAlbum)
	if err != nil {
		return nil, err
	}
	title, err := metaString(meta, fieldTitle)
	if err != nil {
		return nil, err
	}
	artURL, err := metaString(meta, fieldArtURL)
	if err != nil {
		return nil, err
	}

	artwork, err := Normalize(identity, artURL, localPlayer)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Player:  identity,
		Artist:  artists[0],
		Album:   album,
		Title:   title,
		Artwork: artwork,
	}, nil
}

func metaString(meta map[string]dbus.Variant, key string) (string, error) {
	v, ok := meta[key]
	if !ok {
		return "", &MissingFieldError{Field: key}
	}
	s, ok := v.Value().(string)
	if !ok || s == "" {
		return "", &MissingFieldError{Field: key}
	}
	return s, nil
}

func stringProperty(ctx context.Context, conn bus, dest, iface, prop string) (string, error) {
	v, err := conn.Property(ctx, dest, iface, prop)
	if err != nil {
		return "", err
	}
	s, ok := v.Value().(string)
	if !ok {
		return "", fmt.Errorf("property %s.%s: unexpected type %s", iface, prop, v.Signature())
	}
	return s, nil
}

// sessionBus adapts *dbus.Conn to bus.
type sessionBus struct {
	conn *dbus.Conn
}

func dialSession() (bus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &sessionBus{conn: conn}, nil
}

func (b *sessionBus) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := b.conn.BusObject().CallWithContext(ctx, listNames, 0).Store(&names)
	return names, err
}

func (b *sessionBus) Property(ctx context.Context, dest, iface, prop string) (dbus.Variant, error) {
	var v dbus.Variant
	err := b.conn.Object(dest, mprisPath).CallWithContext(ctx, propertiesGet, 0, iface, prop).Store(&v)
	return v, err
}

func (b *sessionBus) Close() error {
	return b.conn.Close()
}
