package engine

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/adventure/internal/game/inventory"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

func testInventory() *inventory.Inventory {
	inv := inventory.New()
	inv.Set("helmet", inventory.Item{Name: "helmet", Description: "a blue helmet covered in dirt"})
	inv.Set("buster", inventory.Item{Name: "buster", Description: "A large cannon with four buttons"})
	inv.Set("pendant", inventory.Item{Name: "pendant", Description: "A rusty pendant with a small seal on it.", Location: inventory.LocationInventory})
	return inv
}

// testState is two rooms joined by a locked south exit that the stone controls
// and an open east exit.
func testState() world.GameState {
	return world.GameState{
		Inventory: testInventory(),
		Rooms: []world.Room{
			{
				ID:          "test_room",
				Description: "Test Room",
				Interactables: []world.Interactable{
					{
						ID:                           "stone_lock",
						Name:                         "stone",
						BeforeInteractionDescription: "A large stone blocks the way south",
						AfterInteractionDescription:  "The stone lies on the floor",
						InteractionDescription:       "The stone rolls onto the floor",
						PrerequisiteItem:             "helmet",
					},
					{
						ID:                           "lever",
						Name:                         "lever",
						BeforeInteractionDescription: "A rusty lever sticks out of the wall",
						AfterInteractionDescription:  "The lever points at the floor",
						InteractionDescription:       "The lever creaks downward",
					},
				},
				Exits: []world.Exit{
					{Direction: world.South, Locked: true, InteractableID: "stone_lock", Target: 1},
					{Direction: world.East, Target: 1},
				},
			},
			{
				ID:          "test_room_2",
				Description: "Test Room 2",
				Exits: []world.Exit{
					{Direction: world.North, Target: 0},
				},
			},
		},
	}
}

func play(t *testing.T, s world.GameState, lines ...string) world.GameState {
	t.Helper()
	for _, line := range lines {
		s = Update(s, line)
	}
	return s
}

func TestStartGame(t *testing.T) {
	s := StartGame()
	require.NoError(t, s.Validate())
	assert.Equal(t, 0, s.CurrentRoomIdx)
	assert.Empty(t, s.SysMessage)
	assert.Contains(t, s.CurrentRoom().GetDescription(), "metal door")
}

func TestUpdate_EmptyInput(t *testing.T) {
	s := Update(testState(), "   ")
	assert.Equal(t, MsgEmptyInput, s.SysMessage)
}

func TestUpdate_IllegalCommand(t *testing.T) {
	prev := testState()
	s := Update(prev, "Dance stone")
	assert.Equal(t, "Dance is not a legal command\n", s.SysMessage)
	assert.Equal(t, prev.Rooms, s.Rooms)
}

func TestUpdate_DoesNotModifyPrev(t *testing.T) {
	prev := testState()
	_ = Update(prev, "grab helmet")
	_ = Update(prev, "push lever")

	item, _ := prev.Inventory.Get("helmet")
	assert.False(t, item.IsHeld())
	assert.False(t, prev.Rooms[0].Interactables[1].Interacted)
	assert.Empty(t, prev.SysMessage)
}

func TestExamine(t *testing.T) {
	s := Update(testState(), "examine stone")
	assert.Equal(t, "A large stone blocks the way south", s.SysMessage)

	s = Update(s, "look pendant")
	assert.Equal(t, "A rusty pendant with a small seal on it.", s.SysMessage)
}

func TestExamine_RoomItemByKey(t *testing.T) {
	s := Update(testState(), "examine helmet")
	assert.Equal(t, "a blue helmet covered in dirt", s.SysMessage)
}

func TestExamine_Unresolved(t *testing.T) {
	s := Update(testState(), "examine face")
	assert.Equal(t, MsgUnresolved, s.SysMessage)
}

func TestExamine_Direction(t *testing.T) {
	s := Update(testState(), "examine north")
	assert.Equal(t, MsgNoAppropriateCommand, s.SysMessage)
}

func TestInteract(t *testing.T) {
	s := play(t, testState(), "examine lever", "push lever")
	assert.Equal(t, "The lever creaks downward", s.SysMessage)
	assert.True(t, s.Rooms[0].Interactables[1].Interacted)

	s = Update(s, "examine lever")
	assert.Equal(t, "The lever points at the floor", s.SysMessage)
}

func TestInteract_Twice(t *testing.T) {
	s := play(t, testState(), "push lever", "pull lever")
	assert.Equal(t, "You have already interacted with the lever", s.SysMessage)
}

func TestInteract_PrerequisiteRequired(t *testing.T) {
	s := Update(testState(), "push stone")
	assert.Equal(t, "You currently can not interact with stone", s.SysMessage)
	assert.False(t, s.Rooms[0].Interactables[0].Interacted)
	assert.True(t, s.Rooms[0].Exits[0].Locked)
}

func TestInteract_NotAnInteractable(t *testing.T) {
	s := Update(testState(), "push helmet")
	assert.Equal(t, MsgNoAppropriateCommand, s.SysMessage)
}

func TestPickUp(t *testing.T) {
	s := Update(testState(), "grab helmet")
	assert.Equal(t, "You have picked up a helmet", s.SysMessage)
	item, _ := s.Inventory.Get("helmet")
	assert.Equal(t, inventory.LocationInventory, item.Location)

	s = Update(s, "take helmet")
	assert.Equal(t, "You already have the helmet", s.SysMessage)
}

func TestPickUp_KeepsOrder(t *testing.T) {
	s := Update(testState(), "grab helmet")
	assert.Equal(t, []string{"helmet", "buster", "pendant"}, s.Inventory.Keys())
}

func TestPickUp_Unresolved(t *testing.T) {
	s := Update(testState(), "grab sword")
	assert.Equal(t, MsgUnresolved, s.SysMessage)
}

func TestListInventory(t *testing.T) {
	s := play(t, testState(), "grab buster", "list inventory")
	want := "Your inventory:\n" +
		"buster: A large cannon with four buttons\n" +
		"pendant: A rusty pendant with a small seal on it.\n"
	assert.Equal(t, want, s.SysMessage)
}

func TestListInventory_Empty(t *testing.T) {
	st := testState()
	st.Inventory.Update("pendant", func(it *inventory.Item) { it.ToRoom() })
	s := Update(st, "list inventory")
	assert.Equal(t, MsgInventoryEmpty, s.SysMessage)
}

func TestListInventory_AliasAlone(t *testing.T) {
	s := Update(testState(), "inventory")
	assert.True(t, strings.HasPrefix(s.SysMessage, MsgInventoryHeader))
}

func TestMove(t *testing.T) {
	s := Update(testState(), "go east")
	assert.Equal(t, 1, s.CurrentRoomIdx)
	assert.Equal(t, "Test Room 2", s.SysMessage)

	s = Update(s, "walk n")
	assert.Equal(t, 0, s.CurrentRoomIdx)
	assert.Equal(t, "Test Room", s.SysMessage)
}

func TestMove_Locked(t *testing.T) {
	s := Update(testState(), "go south")
	assert.Equal(t, 0, s.CurrentRoomIdx)
	assert.Equal(t, MsgExitLocked, s.SysMessage)
}

func TestMove_NoExit(t *testing.T) {
	s := Update(testState(), "go west")
	assert.Equal(t, 0, s.CurrentRoomIdx)
	assert.Equal(t, "There is no exit leaving west", s.SysMessage)
}

func TestMove_NotADirection(t *testing.T) {
	s := Update(testState(), "go stone")
	assert.Equal(t, "There is no path to the stone", s.SysMessage)

	s = Update(s, "go up")
	assert.Equal(t, "There is no path to the ", s.SysMessage)
}

func TestUse_UnlocksExit(t *testing.T) {
	s := play(t, testState(), "grab helmet", "use helmet")
	assert.Equal(t, "The stone rolls onto the floor", s.SysMessage)
	assert.True(t, s.Rooms[0].Interactables[0].Interacted)
	assert.False(t, s.Rooms[0].Exits[0].Locked)
	item, _ := s.Inventory.Get("helmet")
	assert.Equal(t, inventory.LocationRoom, item.Location)

	s = Update(s, "go south")
	assert.Equal(t, 1, s.CurrentRoomIdx)
	assert.Equal(t, "Test Room 2", s.SysMessage)
}

func TestUse_NotHeld(t *testing.T) {
	s := Update(testState(), "use helmet")
	assert.Equal(t, MsgNoSuchItemInInventory, s.SysMessage)
	assert.True(t, s.Rooms[0].Exits[0].Locked)
}

func TestUse_Unresolved(t *testing.T) {
	s := Update(testState(), "use sword")
	assert.Equal(t, MsgNoSuchItemInInventory, s.SysMessage)
}

func TestUse_NotNeededHere(t *testing.T) {
	s := Update(testState(), "use pendant")
	assert.Equal(t, "You can not use `pendant` here", s.SysMessage)
	item, _ := s.Inventory.Get("pendant")
	assert.True(t, item.IsInInventory())
}

func TestUse_AlreadyUsed(t *testing.T) {
	s := play(t, testState(), "grab helmet", "use helmet", "grab helmet", "use helmet")
	assert.Equal(t, "helmet has already been used here", s.SysMessage)
	item, _ := s.Inventory.Get("helmet")
	assert.True(t, item.IsInInventory(), "a failed use leaves the item held")
}

func TestUse_WithoutControlledExit(t *testing.T) {
	st := testState()
	st.Rooms[1].Interactables = []world.Interactable{
		{ID: "altar", Name: "altar", PrerequisiteItem: "buster", InteractionDescription: "The altar hums"},
	}
	s := play(t, st, "grab buster", "go east", "use buster")
	assert.Equal(t, "The altar hums", s.SysMessage)
	assert.True(t, s.Rooms[1].Interactables[0].Interacted)
}

func TestBuiltInWorld_PendantOpensTheDoor(t *testing.T) {
	s := Update(StartGame(), "go south")
	assert.Equal(t, MsgExitLocked, s.SysMessage)

	s = Update(s, "use pendant")
	assert.Equal(t, []string{
		"The pendant fits into the panel in the door.",
		"You hear a brief beeping sound and see a few lights on the panel turn from red to green.",
		"The door swings open to the south.",
	}, strings.Split(s.SysMessage, "\n"))
	item, _ := s.Inventory.Get("pendant")
	assert.Equal(t, inventory.LocationRoom, item.Location)

	s = Update(s, "examine door")
	assert.Equal(t, "The door has slid open and exposed a path to the south.", s.SysMessage)

	s = Update(s, "go south")
	assert.Equal(t, "You find yourself in a room. There is a door to the north and a door to the east.", s.SysMessage)
}

func TestBuiltInWorld_Walkthrough(t *testing.T) {
	s := play(t, StartGame(),
		"use pendant", "go south", "go east", "push crevice", "grab helmet",
		"go south", "grab buster", "go south",
	)
	assert.Equal(t, "Dungeon exit", s.SysMessage)
	assert.Len(t, s.Inventory.Held(), 2)
}

var propertyLines = []string{
	"examine door", "examine stone", "examine lever", "examine helmet", "examine pendant",
	"push stone", "push lever", "push door",
	"grab helmet", "grab buster", "grab pendant",
	"list inventory", "inventory",
	"go north", "go south", "go east", "go west", "go up",
	"use helmet", "use pendant", "use buster",
	"dance", "", "examine face",
}

func drawState(t *rapid.T) world.GameState {
	if rapid.Bool().Draw(t, "builtin") {
		return StartGame()
	}
	return testState()
}

func drawHistory(t *rapid.T, s world.GameState) world.GameState {
	for _, line := range rapid.SliceOfN(rapid.SampledFrom(propertyLines), 0, 12).Draw(t, "history") {
		s = Update(s, line)
	}
	return s
}

func sameWorld(a, b world.GameState) bool {
	return a.CurrentRoomIdx == b.CurrentRoomIdx &&
		reflect.DeepEqual(a.Rooms, b.Rooms) &&
		reflect.DeepEqual(a.Inventory, b.Inventory)
}

func TestPropertyUpdateNeverModifiesPrev(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prev := drawHistory(t, drawState(t))
		snapshot := prev.Clone()
		_ = Update(prev, rapid.SampledFrom(propertyLines).Draw(t, "line"))
		if !sameWorld(prev, snapshot) || prev.SysMessage != snapshot.SysMessage {
			t.Fatalf("Update modified its input")
		}
	})
}

func TestPropertyExamineAndListAreReadOnly(t *testing.T) {
	reads := []string{"examine door", "examine stone", "examine helmet", "list inventory", "inventory", "look lever"}
	rapid.Check(t, func(t *rapid.T) {
		prev := drawHistory(t, drawState(t))
		line := rapid.SampledFrom(reads).Draw(t, "line")
		next := Update(prev, line)
		if !sameWorld(prev, next) {
			t.Fatalf("%q changed the world", line)
		}
		if again := Update(next, line); again.SysMessage != next.SysMessage {
			t.Fatalf("%q is not idempotent: %q then %q", line, next.SysMessage, again.SysMessage)
		}
	})
}

func TestPropertyInteractionIsMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prev := drawHistory(t, drawState(t))
		next := Update(prev, rapid.SampledFrom(propertyLines).Draw(t, "line"))
		for ri := range prev.Rooms {
			for ii, in := range prev.Rooms[ri].Interactables {
				if in.Interacted && !next.Rooms[ri].Interactables[ii].Interacted {
					t.Fatalf("room %d interactable %q was un-interacted", ri, in.ID)
				}
			}
			for ei, exit := range prev.Rooms[ri].Exits {
				if !exit.Locked && next.Rooms[ri].Exits[ei].Locked {
					t.Fatalf("room %d exit %q was re-locked", ri, exit.Direction)
				}
			}
		}
	})
}

func TestPropertyMovementRespectsExits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prev := drawHistory(t, drawState(t))
		line := rapid.SampledFrom(propertyLines).Draw(t, "line")
		next := Update(prev, line)
		if next.CurrentRoomIdx == prev.CurrentRoomIdx {
			return
		}
		if !strings.HasPrefix(line, "go ") {
			t.Fatalf("%q moved the player", line)
		}
		dir := world.Direction(strings.TrimPrefix(line, "go "))
		idx, ok := prev.CurrentRoom().ExitForDirection(dir)
		if !ok {
			t.Fatalf("%q moved the player through a missing exit", line)
		}
		exit := prev.CurrentRoom().Exits[idx]
		if exit.Locked {
			t.Fatalf("%q moved the player through a locked exit", line)
		}
		if exit.Target != next.CurrentRoomIdx {
			t.Fatalf("%q moved to room %d, exit targets %d", line, next.CurrentRoomIdx, exit.Target)
		}
	})
}

func TestPropertyExitUnlocksOnlyWithItsInteractable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prev := drawHistory(t, drawState(t))
		next := Update(prev, rapid.SampledFrom(propertyLines).Draw(t, "line"))
		for ri, room := range next.Rooms {
			for _, exit := range room.Exits {
				if exit.Locked || exit.InteractableID == "" {
					continue
				}
				for _, in := range room.Interactables {
					if in.ID == exit.InteractableID && !in.Interacted {
						t.Fatalf("room %d exit %q is open but %q is untouched", ri, exit.Direction, in.ID)
					}
				}
			}
		}
	})
}

func TestPropertyPickUpIsOneWay(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prev := drawHistory(t, drawState(t))
		key := rapid.SampledFrom([]string{"helmet", "buster", "pendant"}).Draw(t, "key")
		next := Update(prev, fmt.Sprintf("grab %s", key))
		item, ok := next.Inventory.Get(key)
		if !ok || !item.IsInInventory() {
			t.Fatalf("grab %s left the item at %v", key, item.Location)
		}
	})
}

func TestUse_MixedCaseWorldContent(t *testing.T) {
	st, err := world.LoadFromBytes([]byte(`
world:
  rooms:
    - id: entrance
      description: Entrance
      interactables:
        - id: lab_entrance
          name: Door
          prerequisite_item: Pendant
          interaction: The door swings open to the south.
      exits:
        - direction: south
          target: lab
          locked: true
          interactable: lab_entrance
    - id: lab
      description: Lab
  items:
    - key: Pendant
      location: inventory
`))
	require.NoError(t, err)

	s := play(t, st, "use Pendant", "go south")
	assert.Equal(t, "Lab", s.SysMessage)
	assert.Equal(t, 1, s.CurrentRoomIdx)
}
