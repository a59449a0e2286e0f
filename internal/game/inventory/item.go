// Package inventory provides portable items and the player's item mapping.
package inventory

import "fmt"

// Location records where an item currently is.
type Location int

// Item locations. Only Room and Inventory are reachable through play;
// Equipped is accepted from content so held-but-worn items list correctly.
const (
	LocationRoom Location = iota
	LocationInventory
	LocationEquipped
)

// String returns the content spelling of the location.
func (l Location) String() string {
	switch l {
	case LocationRoom:
		return "room"
	case LocationInventory:
		return "inventory"
	case LocationEquipped:
		return "equipped"
	default:
		return fmt.Sprintf("location(%d)", int(l))
	}
}

// ParseLocation converts a content spelling into a Location.
// An empty string means LocationRoom.
//
// Postcondition: Returns the location or an error for unknown spellings.
func ParseLocation(s string) (Location, error) {
	switch s {
	case "", "room":
		return LocationRoom, nil
	case "inventory":
		return LocationInventory, nil
	case "equipped":
		return LocationEquipped, nil
	default:
		return LocationRoom, fmt.Errorf("unknown item location %q", s)
	}
}

// Item is a portable object. Whether it lies in a room or is carried is
// modelled only by Location.
type Item struct {
	Name        string
	Description string
	Location    Location
}

// ToInventory moves the item into the player's possession.
func (i *Item) ToInventory() {
	i.Location = LocationInventory
}

// ToRoom puts the item back into the world, e.g. after it was consumed.
func (i *Item) ToRoom() {
	i.Location = LocationRoom
}

// IsInInventory reports whether the player is holding the item.
func (i Item) IsInInventory() bool {
	return i.Location == LocationInventory
}

// IsHeld reports whether the item is anywhere other than a room.
func (i Item) IsHeld() bool {
	return i.Location != LocationRoom
}
