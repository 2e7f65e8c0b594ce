package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentReference(t *testing.T) {
	testCases := []struct {
		description string
		attachment  Attachment
		wantRef     string
		wantName    string
	}{
		{
			description: "local file uses short attachment form",
			attachment:  NewLocalFile("/home/phate/.cache/rhythmbox/album-art/abc123.jpg"),
			wantRef:     "attachment://abc123.jpg",
			wantName:    "abc123.jpg",
		},
		{
			description: "remote url passes through",
			attachment:  NewRemoteURL("https://i.scdn.co/image/ab67616d"),
			wantRef:     "https://i.scdn.co/image/ab67616d",
			wantName:    "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.wantRef, testCase.attachment.Reference())
			assert.Equal(t, testCase.wantName, testCase.attachment.FileName())
		})
	}
}

func TestResponderFunc(t *testing.T) {
	var got *Message
	r := ResponderFunc(func(_ context.Context, msg *Message) error {
		got = msg
		return nil
	})

	require.NoError(t, r.Send(context.Background(), Text("hi")))
	require.NotNil(t, got)
	assert.Equal(t, "hi", got.Content)
	assert.Nil(t, got.Embed)
}
