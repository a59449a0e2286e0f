// Package world provides the game world model: rooms, exits, interactables,
// directions, and the GameState snapshot that the engine transitions.
package world

import (
	"fmt"

	"github.com/cory-johannsen/adventure/internal/game/inventory"
)

// Direction is one of the eight compass directions.
type Direction string

// Compass directions.
const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
)

// StandardDirections contains all compass directions.
var StandardDirections = []Direction{
	North, South, East, West,
	Northeast, Northwest, Southeast, Southwest,
}

// IsStandard reports whether d is one of the eight compass directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// Exit is a passage from one room to another.
type Exit struct {
	// Direction is the compass direction the exit leaves in.
	Direction Direction
	// Locked blocks movement until the exit is unlocked.
	Locked bool
	// InteractableID names the interactable whose use unlocks this exit.
	// Empty means no interactable controls it.
	InteractableID string
	// Target is the index of the destination room.
	Target int
}

// IsLocked reports whether the exit currently blocks movement.
func (e Exit) IsLocked() bool {
	return e.Locked
}

// Unlock opens the exit.
func (e *Exit) Unlock() {
	e.Locked = false
}

// Interactable is a piece of room scenery that can be triggered once.
type Interactable struct {
	// ID is unique within the owning room and referenced by Exit.InteractableID.
	ID string
	// Name is the noun players type.
	Name string
	// BeforeInteractionDescription is shown by examine until the interactable is triggered.
	BeforeInteractionDescription string
	// AfterInteractionDescription is shown by examine once triggered.
	AfterInteractionDescription string
	// InteractionDescription is shown at the moment of a successful trigger.
	InteractionDescription string
	// Interacted only ever goes from false to true.
	Interacted bool
	// PrerequisiteItem, when set, is the item key that must be used on this
	// interactable; plain interaction is refused.
	PrerequisiteItem string
}

// Interact marks the interactable as triggered.
func (i *Interactable) Interact() {
	i.Interacted = true
}

// IsInteracted reports whether the interactable has been triggered.
func (i Interactable) IsInteracted() bool {
	return i.Interacted
}

// Examine returns the description matching the interaction state.
func (i Interactable) Examine() string {
	if i.Interacted {
		return i.AfterInteractionDescription
	}
	return i.BeforeInteractionDescription
}

// Room is a location in the game world.
type Room struct {
	// ID is the content label used to wire exits in world files.
	ID string
	// Description is shown on entry.
	Description string
	// Interactables are the scenery elements local to this room.
	Interactables []Interactable
	// Items lists item keys placed here by content. It is informational only;
	// pickup is decided by the item's own location.
	Items []string
	// Exits lists all passages leading out of this room.
	Exits []Exit
}

// GetDescription returns the room description.
func (r *Room) GetDescription() string {
	return r.Description
}

// ExitForDirection returns the index of the first exit leaving in dir.
//
// Postcondition: Returns (index, true) if found, or (-1, false) otherwise.
func (r *Room) ExitForDirection(dir Direction) (int, bool) {
	for i, e := range r.Exits {
		if e.Direction == dir {
			return i, true
		}
	}
	return -1, false
}

// InteractableByName returns the index of the interactable players call name.
//
// Postcondition: Returns (index, true) if found, or (-1, false) otherwise.
func (r *Room) InteractableByName(name string) (int, bool) {
	for i, in := range r.Interactables {
		if in.Name == name {
			return i, true
		}
	}
	return -1, false
}

// InteractableForItem returns the index of the interactable that requires item.
//
// Postcondition: Returns (index, true) if found, or (-1, false) otherwise.
func (r *Room) InteractableForItem(item string) (int, bool) {
	if item == "" {
		return -1, false
	}
	for i, in := range r.Interactables {
		if in.PrerequisiteItem == item {
			return i, true
		}
	}
	return -1, false
}

// ExitForInteractable returns the index of the exit controlled by id.
//
// Postcondition: Returns (index, true) if found, or (-1, false) otherwise.
func (r *Room) ExitForInteractable(id string) (int, bool) {
	if id == "" {
		return -1, false
	}
	for i, e := range r.Exits {
		if e.InteractableID == id {
			return i, true
		}
	}
	return -1, false
}

func (r Room) clone() Room {
	out := r
	out.Interactables = append([]Interactable(nil), r.Interactables...)
	out.Items = append([]string(nil), r.Items...)
	out.Exits = append([]Exit(nil), r.Exits...)
	return out
}

// GameState is one snapshot of the world between turns.
type GameState struct {
	// CurrentRoomIdx indexes Rooms.
	CurrentRoomIdx int
	// Inventory holds every item in the game keyed by item key.
	Inventory *inventory.Inventory
	// SysMessage is the text produced by the last turn. Lines are separated by "\n".
	SysMessage string
	// Rooms is fixed after the world is seeded.
	Rooms []Room
}

// CurrentRoom returns the room the player is in.
//
// Precondition: CurrentRoomIdx must be a valid index into Rooms.
func (s *GameState) CurrentRoom() *Room {
	return &s.Rooms[s.CurrentRoomIdx]
}

// Clone returns a deep copy sharing no mutable state with s.
func (s GameState) Clone() GameState {
	out := GameState{
		CurrentRoomIdx: s.CurrentRoomIdx,
		Inventory:      s.Inventory.Clone(),
		SysMessage:     s.SysMessage,
		Rooms:          make([]Room, len(s.Rooms)),
	}
	for i, r := range s.Rooms {
		out.Rooms[i] = r.clone()
	}
	return out
}

// Validate checks the structural invariants of a snapshot.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (s GameState) Validate() error {
	if len(s.Rooms) == 0 {
		return fmt.Errorf("world must contain at least one room")
	}
	if s.CurrentRoomIdx < 0 || s.CurrentRoomIdx >= len(s.Rooms) {
		return fmt.Errorf("current room index %d out of range [0,%d)", s.CurrentRoomIdx, len(s.Rooms))
	}
	for ri, room := range s.Rooms {
		ids := make(map[string]bool, len(room.Interactables))
		for _, in := range room.Interactables {
			if in.ID == "" {
				return fmt.Errorf("room %d: interactable %q has empty id", ri, in.Name)
			}
			if ids[in.ID] {
				return fmt.Errorf("room %d: duplicate interactable id %q", ri, in.ID)
			}
			if in.PrerequisiteItem != "" && !s.Inventory.Has(in.PrerequisiteItem) {
				return fmt.Errorf("room %d: interactable %q requires unknown item %q", ri, in.ID, in.PrerequisiteItem)
			}
			ids[in.ID] = true
		}
		for _, exit := range room.Exits {
			if !exit.Direction.IsStandard() {
				return fmt.Errorf("room %d: exit has unknown direction %q", ri, exit.Direction)
			}
			if exit.Target < 0 || exit.Target >= len(s.Rooms) {
				return fmt.Errorf("room %d: exit %q targets unknown room %d", ri, exit.Direction, exit.Target)
			}
			if exit.InteractableID != "" && !ids[exit.InteractableID] {
				return fmt.Errorf("room %d: exit %q references unknown interactable %q", ri, exit.Direction, exit.InteractableID)
			}
		}
	}
	return nil
}
