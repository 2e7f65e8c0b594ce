package docs

import (
	"testing"

	"github.com/phate6660/rsphate/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	reg, err := command.NewRegistry(command.Deps{Prefix: "^"})
	require.NoError(t, err)

	out, err := Render("# rsphate\n\nPrefix: `{{.Prefix}}`\n\n{{.CommandSections}}", reg, "^")
	require.NoError(t, err)

	readme := string(out)
	assert.Contains(t, readme, "Prefix: `^`")
	assert.Contains(t, readme, "### General")
	assert.Contains(t, readme, "* **`^git site user/repo`**")
	assert.Contains(t, readme, "  - `^www systemd`")
	assert.Contains(t, readme, "### Help")
}

func TestRenderBadTemplate(t *testing.T) {
	reg, err := command.NewRegistry(command.Deps{Prefix: "^"})
	require.NoError(t, err)

	_, err = Render("{{.Broken", reg, "^")
	assert.Error(t, err)
}
