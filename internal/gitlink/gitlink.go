// Package gitlink expands "site namespace/repo" shorthand into a full repository URL.
package gitlink

import "sort"

// Fallback is returned for site keywords that aren't known.
const Fallback = "Could not generate a full link, please try again."

var bases = map[string]string{
	"github":    "https://github.com/",
	"gitlab":    "https://gitlab.com/",
	"codeberg":  "https://codeberg.org/",
	"sourcehut": "https://sr.ht/~",
}

// Format returns the base URL for site followed by repo verbatim, or Fallback.
func Format(site, repo string) string {
	base, ok := bases[site]
	if !ok {
		return Fallback
	}
	return base + repo
}

// Sites returns the known site keywords, sorted.
func Sites() []string {
	sites := make([]string, 0, len(bases))
	for s := range bases {
		sites = append(sites, s)
	}
	sort.Strings(sites)
	return sites
}
