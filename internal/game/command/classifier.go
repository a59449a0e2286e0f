package command

import (
	"github.com/cory-johannsen/adventure/internal/game/inventory"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// Input is a fully classified line of player input.
type Input struct {
	// Verb is the first word exactly as typed.
	Verb string
	// Rejected is set when Verb is not a legal command; nothing else is resolved.
	Rejected bool
	// Intent is the meaning of Verb.
	Intent Intent
	// ObjectNoun is the first argument that resolved against a namespace, lowercased.
	// Empty when no argument resolved.
	ObjectNoun string
	// IsDirection is set when ObjectNoun is a direction word.
	IsDirection bool
	// IsItem is set when ObjectNoun is an inventory key.
	IsItem bool
	// IsInteractable is set when ObjectNoun names an interactable in the room.
	IsInteractable bool
	// Namespace names the matcher that resolved ObjectNoun, for logging.
	Namespace string
}

// HasObject reports whether an object noun was resolved.
func (in Input) HasObject() bool {
	return in.ObjectNoun != ""
}

// matcher tests a lowercased word against one namespace and tags the input on a hit.
type matcher struct {
	name  string
	match func(word string) bool
	tag   func(in *Input)
}

// objectMatchers returns the namespaces in priority order: the literal
// "inventory", direction words, inventory keys, then room interactable names.
func objectMatchers(room *world.Room, inv *inventory.Inventory) []matcher {
	return []matcher{
		{
			name:  "keyword",
			match: func(w string) bool { return w == "inventory" },
			tag:   func(*Input) {},
		},
		{
			name:  "direction",
			match: IsDirection,
			tag:   func(in *Input) { in.IsDirection = true },
		},
		{
			name:  "item",
			match: inv.Has,
			tag:   func(in *Input) { in.IsItem = true },
		},
		{
			name: "interactable",
			match: func(w string) bool {
				if room == nil {
					return false
				}
				_, ok := room.InteractableByName(w)
				return ok
			},
			tag: func(in *Input) { in.IsInteractable = true },
		},
	}
}

// Classify resolves the verb and object noun of line against the acting room
// and the inventory.
//
// Postcondition: If the verb is illegal, Rejected is true and no noun is resolved.
// Otherwise Intent is set and at most one namespace flag is set.
func Classify(line string, room *world.Room, inv *inventory.Inventory) Input {
	parsed := Parse(line)
	in := Input{Verb: parsed.Verb}
	if parsed.Command == "" {
		return in
	}
	if !IsLegalCommand(parsed.Command) {
		in.Rejected = true
		return in
	}
	in.Intent = DetermineIntent(parsed.Command)

	matchers := objectMatchers(room, inv)
	for _, arg := range parsed.Args {
		word := Normalize(arg)
		for _, m := range matchers {
			if m.match(word) {
				in.ObjectNoun = word
				in.Namespace = m.name
				m.tag(&in)
				return in
			}
		}
	}
	return in
}
