package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "secret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.DiscordToken)
	assert.Equal(t, "^", cfg.CommandPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Rhythmbox", cfg.LocalPlayer)
	assert.Equal(t, "^help for help", cfg.Presence)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "secret")
	t.Setenv("COMMAND_PREFIX", "!")
	t.Setenv("LOCAL_PLAYER", "Lollypop")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.Equal(t, "Lollypop", cfg.LocalPlayer)
}

func TestFromEnvMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "DISCORD_TOKEN")
}
