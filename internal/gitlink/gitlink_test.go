package gitlink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		description string
		site        string
		repo        string
		want        string
	}{
		{description: "github", site: "github", repo: "Phate6660/rsfetch", want: "https://github.com/Phate6660/rsfetch"},
		{description: "gitlab", site: "gitlab", repo: "ArcticTheRogue/asgl", want: "https://gitlab.com/ArcticTheRogue/asgl"},
		{description: "codeberg", site: "codeberg", repo: "Phate6660/musinfo", want: "https://codeberg.org/Phate6660/musinfo"},
		{description: "sourcehut", site: "sourcehut", repo: "phate/rsPhate", want: "https://sr.ht/~phate/rsPhate"},
		{description: "repo passed through unencoded", site: "github", repo: "a b/%20?x", want: "https://github.com/a b/%20?x"},
		{description: "unknown site", site: "bitbucket", repo: "x/y", want: Fallback},
		{description: "site is case-sensitive", site: "GitHub", repo: "x/y", want: Fallback},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.want, Format(testCase.site, testCase.repo))
		})
	}
}

func TestSites(t *testing.T) {
	assert.Equal(t, []string{"codeberg", "github", "gitlab", "sourcehut"}, Sites())
}
