package command

import (
	"fmt"
	"sort"
)

// Registry maps verbs and aliases to Command definitions.
type Registry struct {
	commands map[string]*Command // canonical name → command
	aliases  map[string]string   // alias → canonical name
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No two commands may share a canonical name or alias.
// Postcondition: Returns a Registry or an error on name/alias collisions or
// a command without an intent.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*Command, len(cmds)),
		aliases:  make(map[string]string),
	}

	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Intent == IntentUnknown {
			return nil, fmt.Errorf("command %q has no intent", cmd.Name)
		}
		if _, exists := r.commands[cmd.Name]; exists {
			return nil, fmt.Errorf("duplicate command name: %q", cmd.Name)
		}
		if _, exists := r.aliases[cmd.Name]; exists {
			return nil, fmt.Errorf("command name %q conflicts with an existing alias", cmd.Name)
		}
		r.commands[cmd.Name] = cmd

		for _, alias := range cmd.Aliases {
			if _, exists := r.commands[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with command name %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, cmd.Name)
			}
			r.aliases[alias] = cmd.Name
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in commands.
//
// Postcondition: Returns a Registry with all built-in commands registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

var defaultRegistry = DefaultRegistry()

// Resolve looks up a command by verb or alias.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(verb string) (*Command, bool) {
	if cmd, ok := r.commands[verb]; ok {
		return cmd, true
	}
	if canonical, ok := r.aliases[verb]; ok {
		return r.commands[canonical], true
	}
	return nil, false
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Verbs returns every legal verb, names and aliases, sorted.
func (r *Registry) Verbs() []string {
	verbs := make([]string, 0, len(r.commands)+len(r.aliases))
	for name := range r.commands {
		verbs = append(verbs, name)
	}
	for alias := range r.aliases {
		verbs = append(verbs, alias)
	}
	sort.Strings(verbs)
	return verbs
}

// IsLegalCommand reports whether word is a known verb.
//
// Precondition: word is lowercase.
func IsLegalCommand(word string) bool {
	_, ok := defaultRegistry.Resolve(word)
	return ok
}

// DetermineIntent maps a legal verb to its intent.
//
// Precondition: IsLegalCommand(word) is true.
// Postcondition: Returns IntentUnknown only when the precondition is violated.
func DetermineIntent(word string) Intent {
	cmd, ok := defaultRegistry.Resolve(word)
	if !ok {
		return IntentUnknown
	}
	return cmd.Intent
}

// LegalCommands returns the built-in commands sorted by name.
func LegalCommands() []*Command {
	return defaultRegistry.Commands()
}
