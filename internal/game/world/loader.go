package world

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/adventure/internal/game/inventory"
)

//go:embed content/ruins.yaml
var defaultWorldYAML []byte

// yamlWorldFile is the top-level YAML structure for world files.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

// yamlWorld is the YAML representation of a complete world.
type yamlWorld struct {
	StartRoom string     `yaml:"start_room"`
	Rooms     []yamlRoom `yaml:"rooms"`
	Items     []yamlItem `yaml:"items"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID            string             `yaml:"id"`
	Description   string             `yaml:"description"`
	Items         []string           `yaml:"items"`
	Interactables []yamlInteractable `yaml:"interactables"`
	Exits         []yamlExit         `yaml:"exits"`
}

// yamlInteractable is the YAML representation of an interactable.
type yamlInteractable struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Before           string `yaml:"before"`
	After            string `yaml:"after"`
	Interaction      string `yaml:"interaction"`
	PrerequisiteItem string `yaml:"prerequisite_item"`
	Interacted       bool   `yaml:"interacted"`
}

// yamlExit is the YAML representation of an exit.
type yamlExit struct {
	Direction    string `yaml:"direction"`
	Target       string `yaml:"target"`
	Locked       bool   `yaml:"locked"`
	Interactable string `yaml:"interactable"`
}

// yamlItem is the YAML representation of an inventory entry.
type yamlItem struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
}

// LoadDefault returns the built-in world.
//
// Postcondition: Returns a validated GameState positioned at the start room.
func LoadDefault() (GameState, error) {
	return LoadFromBytes(defaultWorldYAML)
}

// LoadFromFile reads and validates a world YAML file.
//
// Precondition: path must point to a valid YAML world file.
// Postcondition: Returns a validated GameState or a non-nil error.
func LoadFromFile(path string) (GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameState{}, fmt.Errorf("reading world file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a world from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the world schema.
// Postcondition: Returns a validated GameState or a non-nil error.
func LoadFromBytes(data []byte) (GameState, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return GameState{}, fmt.Errorf("parsing world YAML: %w", err)
	}

	state, err := convertYAMLWorld(file.World)
	if err != nil {
		return GameState{}, fmt.Errorf("converting world: %w", err)
	}
	if err := state.Validate(); err != nil {
		return GameState{}, fmt.Errorf("validating world: %w", err)
	}
	return state, nil
}

// convertYAMLWorld resolves room ids to indexes and builds the snapshot.
func convertYAMLWorld(yw yamlWorld) (GameState, error) {
	if len(yw.Rooms) == 0 {
		return GameState{}, fmt.Errorf("world must contain at least one room")
	}

	index := make(map[string]int, len(yw.Rooms))
	for i, yr := range yw.Rooms {
		if yr.ID == "" {
			return GameState{}, fmt.Errorf("room %d: id must not be empty", i)
		}
		if _, dup := index[yr.ID]; dup {
			return GameState{}, fmt.Errorf("duplicate room id %q", yr.ID)
		}
		index[yr.ID] = i
	}

	start := 0
	if yw.StartRoom != "" {
		idx, ok := index[yw.StartRoom]
		if !ok {
			return GameState{}, fmt.Errorf("start_room %q not found in rooms", yw.StartRoom)
		}
		start = idx
	}

	rooms := make([]Room, 0, len(yw.Rooms))
	for _, yr := range yw.Rooms {
		room := Room{
			ID:          yr.ID,
			Description: strings.TrimSpace(yr.Description),
			Items:       yr.Items,
		}
		for _, yi := range yr.Interactables {
			room.Interactables = append(room.Interactables, Interactable{
				ID:                           yi.ID,
				Name:                         strings.ToLower(yi.Name),
				BeforeInteractionDescription: strings.TrimSpace(yi.Before),
				AfterInteractionDescription:  strings.TrimSpace(yi.After),
				InteractionDescription:       strings.TrimSpace(yi.Interaction),
				Interacted:                   yi.Interacted,
				PrerequisiteItem:             strings.ToLower(yi.PrerequisiteItem),
			})
		}
		for _, ye := range yr.Exits {
			target, ok := index[ye.Target]
			if !ok {
				return GameState{}, fmt.Errorf("room %q: exit %q targets unknown room %q", yr.ID, ye.Direction, ye.Target)
			}
			room.Exits = append(room.Exits, Exit{
				Direction:      Direction(strings.ToLower(ye.Direction)),
				Locked:         ye.Locked,
				InteractableID: ye.Interactable,
				Target:         target,
			})
		}
		rooms = append(rooms, room)
	}

	inv := inventory.New()
	for _, yi := range yw.Items {
		key := strings.ToLower(yi.Key)
		if key == "" {
			return GameState{}, fmt.Errorf("item %q: key must not be empty", yi.Name)
		}
		if inv.Has(key) {
			return GameState{}, fmt.Errorf("duplicate item key %q", key)
		}
		loc, err := inventory.ParseLocation(yi.Location)
		if err != nil {
			return GameState{}, fmt.Errorf("item %q: %w", yi.Key, err)
		}
		name := yi.Name
		if name == "" {
			name = key
		}
		inv.Set(key, inventory.Item{
			Name:        name,
			Description: strings.TrimSpace(yi.Description),
			Location:    loc,
		})
	}

	return GameState{
		CurrentRoomIdx: start,
		Inventory:      inv,
		Rooms:          rooms,
	}, nil
}
