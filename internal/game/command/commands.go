// Package command provides the verb vocabulary, the input tokenizer, and the
// classifier that turns a line of player input into a resolved Input.
package command

import "fmt"

// Intent is the semantic category of a command verb.
type Intent int

// Intents. Every legal verb maps to one of the non-Unknown values.
const (
	IntentUnknown Intent = iota
	IntentExamine
	IntentInteract
	IntentInventory
	IntentListInventory
	IntentMovement
	IntentUse
)

// String returns the upper-case intent name.
func (i Intent) String() string {
	switch i {
	case IntentExamine:
		return "EXAMINE"
	case IntentInteract:
		return "INTERACT"
	case IntentInventory:
		return "INVENTORY"
	case IntentListInventory:
		return "LIST_INVENTORY"
	case IntentMovement:
		return "MOVEMENT"
	case IntentUse:
		return "USE"
	case IntentUnknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

// Command defines a player verb.
type Command struct {
	// Name is the canonical verb.
	Name string
	// Aliases are alternate verbs with the same intent.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Intent is what the verb asks the engine to do.
	Intent Intent
}

// BuiltinCommands returns the fixed verb vocabulary.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "examine", Aliases: []string{"inspect", "look", "check", "read"}, Help: "Examine something in the room or an item you carry", Intent: IntentExamine},
		{Name: "interact", Aliases: []string{"push", "pull", "press", "open", "touch", "turn"}, Help: "Interact with something in the room", Intent: IntentInteract},
		{Name: "grab", Aliases: []string{"take", "get", "pickup"}, Help: "Pick up an item", Intent: IntentInventory},
		{Name: "list", Aliases: []string{"show", "inventory", "inv"}, Help: "List the items you carry", Intent: IntentListInventory},
		{Name: "go", Aliases: []string{"move", "walk", "run", "head"}, Help: "Move in a direction", Intent: IntentMovement},
		{Name: "use", Aliases: []string{"insert", "apply", "place"}, Help: "Use an item you carry on something in the room", Intent: IntentUse},
	}
}
