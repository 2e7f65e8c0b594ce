package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/phate6660/rsphate/internal/chat"
	"github.com/phate6660/rsphate/pkg/cmd"
)

const helpColor = 0x9B59B6

// HelpCommand lists registered commands, or details for one command or group.
type HelpCommand struct {
	Registry *cmd.Registry
	Prefix   string
}

func (c *HelpCommand) Name() string { return "help" }
func (c *HelpCommand) Description() string {
	return "Shows the list of commands, or details about one."
}
func (c *HelpCommand) Usage() string      { return "[command|group]" }
func (c *HelpCommand) Group() string      { return "Help" }
func (c *HelpCommand) Arity() cmd.Arity   { return cmd.Range(0, 1) }
func (c *HelpCommand) Examples() []string { return []string{"git", "General"} }

func (c *HelpCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, err := request(inv)
	if err != nil {
		return err
	}

	var msg *chat.Message
	if len(inv.Args) == 0 {
		msg = &chat.Message{Embed: c.overview()}
	} else {
		msg = c.lookup(strings.TrimPrefix(inv.Args[0], c.Prefix))
	}

	if err := req.Send(ctx, msg); err != nil {
		return fmt.Errorf("send help: %w", err)
	}
	return nil
}

func (c *HelpCommand) overview() *chat.Embed {
	groups := c.Registry.Groups()
	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	sort.Strings(names)

	embed := &chat.Embed{
		Title:       "Help",
		Description: fmt.Sprintf("`%[1]shelp` | `%[1]shelp command` | `%[1]shelp group`", c.Prefix),
		Color:       helpColor,
	}
	for _, g := range names {
		embed.Fields = append(embed.Fields, chat.Field{Name: g, Value: c.listing(groups[g])})
	}
	return embed
}

func (c *HelpCommand) lookup(name string) *chat.Message {
	if found := c.Registry.Get(name); found != nil {
		return &chat.Message{Embed: c.detail(found)}
	}

	for group, cmds := range c.Registry.Groups() {
		if strings.EqualFold(group, name) {
			return &chat.Message{Embed: &chat.Embed{
				Title: "Group: " + group,
				Color: helpColor,
				Fields: []chat.Field{
					{Name: "Commands", Value: c.listing(cmds)},
				},
			}}
		}
	}

	return &chat.Message{Content: fmt.Sprintf("Could not find command or group %q.", name), Reply: true}
}

func (c *HelpCommand) detail(found cmd.Command) *chat.Embed {
	embed := &chat.Embed{
		Title:       c.Prefix + found.Name(),
		Description: found.Description(),
		Color:       helpColor,
	}

	doc, ok := cmd.Root(found).(cmd.Documented)
	if !ok {
		return embed
	}

	embed.Fields = append(embed.Fields, chat.Field{Name: "Usage", Value: "`" + c.usage(found) + "`"})
	if examples := doc.Examples(); len(examples) > 0 {
		var sb strings.Builder
		for _, ex := range examples {
			sb.WriteString(fmt.Sprintf("`%s%s %s`\n", c.Prefix, found.Name(), ex))
		}
		embed.Fields = append(embed.Fields, chat.Field{Name: "Examples", Value: strings.TrimRight(sb.String(), "\n")})
	}
	if doc.Group() != "" {
		embed.Fields = append(embed.Fields, chat.Field{Name: "Group", Value: doc.Group()})
	}
	return embed
}

func (c *HelpCommand) usage(found cmd.Command) string {
	u := c.Prefix + found.Name()
	if doc, ok := cmd.Root(found).(cmd.Documented); ok && doc.Usage() != "" {
		u += " " + doc.Usage()
	}
	return u
}

func (c *HelpCommand) listing(cmds []cmd.Command) string {
	var sb strings.Builder
	for _, found := range cmds {
		sb.WriteString(fmt.Sprintf("`%s` - %s\n", c.usage(found), found.Description()))
	}
	return strings.TrimRight(sb.String(), "\n")
}
