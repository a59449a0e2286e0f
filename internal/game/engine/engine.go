// Package engine implements the turn transition function: one line of player
// input applied to one GameState snapshot yields the next snapshot.
package engine

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/inventory"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// StartGame returns the initial snapshot of the built-in world.
//
// Postcondition: Returns a validated GameState with an empty SysMessage.
// Panics if the embedded world content is invalid.
func StartGame() world.GameState {
	state, err := world.LoadDefault()
	if err != nil {
		panic(fmt.Sprintf("loading built-in world: %v", err))
	}
	return state
}

// Update applies one line of input to prev and returns the next snapshot.
// prev is never modified; the result shares no mutable state with it.
//
// Precondition: prev satisfies GameState.Validate.
// Postcondition: The returned state carries the message for this turn. Every
// effect of the action is applied, or none is.
func Update(prev world.GameState, input string) world.GameState {
	next := prev.Clone()

	if strings.TrimSpace(input) == "" {
		next.SysMessage = MsgEmptyInput
		return next
	}

	room := next.CurrentRoom()
	in := command.Classify(input, room, next.Inventory)
	if in.Rejected {
		next.SysMessage = fmt.Sprintf(MsgIllegalCommandFmt, in.Verb)
		return next
	}

	if in.HasObject() {
		// Replaced below by every branch that applies to the resolved noun.
		next.SysMessage = MsgNoAppropriateCommand
	} else {
		next.SysMessage = MsgUnresolved
	}

	switch in.Intent {
	case command.IntentExamine:
		examine(&next, in)
	case command.IntentInteract:
		interact(&next, in)
	case command.IntentInventory:
		pickUp(&next, in)
	case command.IntentListInventory:
		listInventory(&next)
	case command.IntentMovement:
		move(&next, in)
	case command.IntentUse:
		use(&next, in)
	default:
		next.SysMessage = MsgNoAppropriateCommand
	}

	return next
}

func examine(s *world.GameState, in command.Input) {
	room := s.CurrentRoom()
	switch {
	case in.IsInteractable:
		idx, _ := room.InteractableByName(in.ObjectNoun)
		s.SysMessage = room.Interactables[idx].Examine()
	case in.IsItem:
		item, _ := s.Inventory.Get(in.ObjectNoun)
		s.SysMessage = item.Description
	}
}

func interact(s *world.GameState, in command.Input) {
	if !in.IsInteractable {
		return
	}
	room := s.CurrentRoom()
	idx, _ := room.InteractableByName(in.ObjectNoun)
	target := &room.Interactables[idx]

	switch {
	case target.PrerequisiteItem != "":
		s.SysMessage = fmt.Sprintf(MsgCannotInteractFmt, target.Name)
	case target.IsInteracted():
		s.SysMessage = fmt.Sprintf(MsgAlreadyInteractedFmt, target.Name)
	default:
		target.Interact()
		s.SysMessage = target.InteractionDescription
	}
}

func pickUp(s *world.GameState, in command.Input) {
	if !in.IsItem {
		return
	}
	item, _ := s.Inventory.Get(in.ObjectNoun)
	if item.IsHeld() {
		s.SysMessage = fmt.Sprintf(MsgAlreadyHaveFmt, item.Name)
		return
	}
	item.ToInventory()
	s.Inventory.Set(in.ObjectNoun, item)
	s.SysMessage = fmt.Sprintf(MsgPickedUpFmt, item.Name)
}

func listInventory(s *world.GameState) {
	held := s.Inventory.Held()
	if len(held) == 0 {
		s.SysMessage = MsgInventoryEmpty
		return
	}
	var b strings.Builder
	b.WriteString(MsgInventoryHeader)
	for _, item := range held {
		fmt.Fprintf(&b, MsgInventoryLineFmt, item.Name, item.Description)
	}
	s.SysMessage = b.String()
}

func move(s *world.GameState, in command.Input) {
	if !in.IsDirection {
		s.SysMessage = fmt.Sprintf(MsgNoPathFmt, in.ObjectNoun)
		return
	}
	dir, _ := command.TextToDirection(in.ObjectNoun)
	room := s.CurrentRoom()
	idx, ok := room.ExitForDirection(dir)
	switch {
	case !ok:
		s.SysMessage = fmt.Sprintf(MsgNoExitFmt, in.ObjectNoun)
	case room.Exits[idx].IsLocked():
		s.SysMessage = MsgExitLocked
	default:
		s.CurrentRoomIdx = room.Exits[idx].Target
		s.SysMessage = s.CurrentRoom().GetDescription()
	}
}

func use(s *world.GameState, in command.Input) {
	item, found := s.Inventory.Get(in.ObjectNoun)
	held := found && item.IsInInventory()

	room := s.CurrentRoom()
	idx, here := room.InteractableForItem(in.ObjectNoun)

	switch {
	case in.IsItem && held && here:
		target := &room.Interactables[idx]
		if target.IsInteracted() {
			s.SysMessage = fmt.Sprintf(MsgAlreadyUsedFmt, target.PrerequisiteItem)
			return
		}
		if exitIdx, ok := room.ExitForInteractable(target.ID); ok {
			room.Exits[exitIdx].Unlock()
		}
		target.Interact()
		// Used items stay behind; they cannot be used twice.
		s.Inventory.Update(in.ObjectNoun, func(it *inventory.Item) { it.ToRoom() })
		s.SysMessage = target.InteractionDescription
	case !held:
		// Holding the item is checked before the room's needs are revealed.
		s.SysMessage = MsgNoSuchItemInInventory
	default:
		s.SysMessage = fmt.Sprintf(MsgCannotUseHereFmt, in.ObjectNoun)
	}
}
