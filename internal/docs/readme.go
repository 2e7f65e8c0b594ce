// Package docs renders the command reference section of README.md from the registry.
package docs

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/phate6660/rsphate/pkg/cmd"
)

// CommandSections returns markdown listing every command, grouped.
func CommandSections(registry *cmd.Registry, prefix string) string {
	groups := registry.Groups()
	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	for _, g := range names {
		fmt.Fprintf(&buf, "### %s\n\n", g)
		for _, c := range groups[g] {
			usage := prefix + c.Name()
			var examples []string
			if doc, ok := cmd.Root(c).(cmd.Documented); ok {
				if doc.Usage() != "" {
					usage += " " + doc.Usage()
				}
				examples = doc.Examples()
			}
			fmt.Fprintf(&buf, "* **`%s`**\n  %s\n", usage, c.Description())
			for _, ex := range examples {
				fmt.Fprintf(&buf, "  - `%s%s %s`\n", prefix, c.Name(), ex)
			}
			buf.WriteString("\n")
		}
	}
	return strings.TrimRight(buf.String(), "\n") + "\n"
}

// Render executes tmpl with the command sections available as .CommandSections.
func Render(tmpl string, registry *cmd.Registry, prefix string) ([]byte, error) {
	t, err := template.New("readme").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse readme template: %w", err)
	}

	data := map[string]any{
		"Prefix":          prefix,
		"CommandSections": CommandSections(registry, prefix),
	}

	var out bytes.Buffer
	if err := t.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("render readme: %w", err)
	}
	return out.Bytes(), nil
}
