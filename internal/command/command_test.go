package command

import (
	"context"
	"errors"
	"testing"

	"github.com/phate6660/rsphate/internal/chat"
	"github.com/phate6660/rsphate/internal/gitlink"
	"github.com/phate6660/rsphate/internal/nowplaying"
	"github.com/phate6660/rsphate/pkg/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	sent []*chat.Message
	err  error
}

func (r *recorder) Send(_ context.Context, msg *chat.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

type fakeSource struct {
	snap *nowplaying.Snapshot
	err  error
}

func (f *fakeSource) Snapshot(_ context.Context) (*nowplaying.Snapshot, error) {
	return f.snap, f.err
}

func invoke(t *testing.T, c cmd.Command, rest string, args ...string) (*recorder, error) {
	t.Helper()
	rec := &recorder{}
	inv := &cmd.Invocation{
		Args: args,
		Rest: rest,
		Data: &chat.Request{In: &chat.Incoming{ChannelID: "c1"}, Out: rec},
	}
	return rec, c.Run(context.Background(), inv)
}

func TestGitCommand(t *testing.T) {
	rec, err := invoke(t, &GitCommand{}, "codeberg Phate6660/musinfo", "codeberg", "Phate6660/musinfo")
	require.NoError(t, err)
	require.Len(t, rec.sent, 1)
	assert.Equal(t, "https://codeberg.org/Phate6660/musinfo", rec.sent[0].Content)
	assert.Nil(t, rec.sent[0].Embed)

	rec, err = invoke(t, &GitCommand{}, "bitbucket x/y", "bitbucket", "x/y")
	require.NoError(t, err)
	assert.Equal(t, gitlink.Fallback, rec.sent[0].Content)
}

func TestGitCommandSendError(t *testing.T) {
	rec := &recorder{err: errors.New("rate limited")}
	inv := &cmd.Invocation{Args: []string{"github", "a/b"}, Data: &chat.Request{Out: rec}}

	err := (&GitCommand{}).Run(context.Background(), inv)
	assert.ErrorContains(t, err, "rate limited")
}

func TestWWWCommand(t *testing.T) {
	rec, err := invoke(t, &WWWCommand{}, "apple", "apple")
	require.NoError(t, err)
	require.Len(t, rec.sent, 1)
	require.NotNil(t, rec.sent[0].Embed)
	assert.Equal(t, "Why Phate6660 hates Apple:", rec.sent[0].Embed.Title)
	require.Len(t, rec.sent[0].Embed.Fields, 3)
	assert.Equal(t, "They are Evil", rec.sent[0].Embed.Fields[0].Name)

	rec, err = invoke(t, &WWWCommand{}, "windows vista", "windows", "vista")
	require.NoError(t, err)
	require.Len(t, rec.sent, 1)
	assert.Equal(t, "unknown query: windows vista", rec.sent[0].Content)
	assert.True(t, rec.sent[0].Reply)
}

func TestNowPlayingCommand(t *testing.T) {
	src := &fakeSource{snap: &nowplaying.Snapshot{
		Player:  "Rhythmbox",
		Artist:  "Artist",
		Album:   "Album",
		Title:   "Song",
		Artwork: chat.NewLocalFile("/tmp/art/abc.jpg"),
	}}

	rec, err := invoke(t, &NowPlayingCommand{Source: src}, "")
	require.NoError(t, err)
	require.Len(t, rec.sent, 1)
	embed := rec.sent[0].Embed
	require.NotNil(t, embed)
	assert.Equal(t, "What Is Phate Listening To Right Now", embed.Title)
	assert.Equal(t, "attachment://abc.jpg", embed.Image.Reference())
}

func TestNowPlayingCommandIsSilentOnPlayerErrors(t *testing.T) {
	for _, srcErr := range []error{
		nowplaying.ErrConnection,
		nowplaying.ErrNoActivePlayer,
		&nowplaying.MissingFieldError{Field: "xesam:album"},
	} {
		rec, err := invoke(t, &NowPlayingCommand{Source: &fakeSource{err: srcErr}}, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, srcErr)
		assert.Empty(t, rec.sent)
	}
}

func TestRunWithoutRequest(t *testing.T) {
	err := (&GitCommand{}).Run(context.Background(), &cmd.Invocation{Args: []string{"a", "b"}})
	assert.Error(t, err)
}

func newTestRegistry(t *testing.T) *cmd.Registry {
	t.Helper()
	reg, err := NewRegistry(Deps{Prefix: "^", NowPlaying: &fakeSource{err: nowplaying.ErrNoActivePlayer}})
	require.NoError(t, err)
	return reg
}

func TestNewRegistry(t *testing.T) {
	reg := newTestRegistry(t)

	var names []string
	for _, c := range reg.GetAll() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"git", "help", "wipltrn", "www"}, names)
	assert.Equal(t, cmd.Exact(2), cmd.ArityOf(reg.Get("git")))
	assert.True(t, cmd.ArityOf(reg.Get("www")).IsRest())
	assert.Error(t, reg.Register(&GitCommand{}), "registry is frozen")
}

func TestHelpOverview(t *testing.T) {
	reg := newTestRegistry(t)
	rec, err := invoke(t, reg.Get("help"), "")
	require.NoError(t, err)
	require.Len(t, rec.sent, 1)

	embed := rec.sent[0].Embed
	require.NotNil(t, embed)
	assert.Contains(t, embed.Description, "`^help command`")
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "General", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "`^git site user/repo`")
	assert.Contains(t, embed.Fields[0].Value, "`^www topic`")
	assert.Contains(t, embed.Fields[0].Value, "`^wipltrn`")
	assert.Equal(t, "Help", embed.Fields[1].Name)
}

func TestHelpLookup(t *testing.T) {
	reg := newTestRegistry(t)

	rec, err := invoke(t, reg.Get("help"), "git", "git")
	require.NoError(t, err)
	embed := rec.sent[0].Embed
	require.NotNil(t, embed)
	assert.Equal(t, "^git", embed.Title)
	assert.Equal(t, (&GitCommand{}).Description(), embed.Description)
	require.GreaterOrEqual(t, len(embed.Fields), 2)
	assert.Equal(t, "`^git site user/repo`", embed.Fields[0].Value)
	assert.Contains(t, embed.Fields[1].Value, "`^git codeberg Phate6660/musinfo`")

	rec, err = invoke(t, reg.Get("help"), "general", "general")
	require.NoError(t, err)
	require.NotNil(t, rec.sent[0].Embed)
	assert.Equal(t, "Group: General", rec.sent[0].Embed.Title)

	rec, err = invoke(t, reg.Get("help"), "nope", "nope")
	require.NoError(t, err)
	assert.Equal(t, `Could not find command or group "nope".`, rec.sent[0].Content)
}
