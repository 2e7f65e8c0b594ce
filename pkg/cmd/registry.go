package cmd

import (
	"fmt"
	"sort"
)

// Registry stores commands by name. It does not perform dispatch; each adapter
// looks up commands and invokes them with its own context. Commands are added
// at startup; after Freeze the registry is read-only and safe for concurrent use.
type Registry struct {
	commands map[string]Command
	frozen   bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command, applying mws with the first one outermost.
func (r *Registry) Register(c Command, mws ...Middleware) error {
	if r.frozen {
		return fmt.Errorf("register %q: registry is frozen", c.Name())
	}
	if _, ok := r.commands[c.Name()]; ok {
		return fmt.Errorf("register %q: duplicate command name", c.Name())
	}
	r.commands[c.Name()] = Apply(c, mws...)
	return nil
}

// Freeze stops further registration.
func (r *Registry) Freeze() { r.frozen = true }

// Get returns the command with the given name, or nil. Names are case-sensitive.
func (r *Registry) Get(name string) Command {
	return r.commands[name]
}

// GetAll returns all registered commands, sorted by name.
func (r *Registry) GetAll() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Groups returns commands keyed by group name. Commands without help text
// land in the "General" group.
func (r *Registry) Groups() map[string][]Command {
	groups := make(map[string][]Command)
	for _, c := range r.GetAll() {
		g := "General"
		if d, ok := Root(c).(Documented); ok && d.Group() != "" {
			g = d.Group()
		}
		groups[g] = append(groups[g], c)
	}
	return groups
}
