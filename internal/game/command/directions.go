package command

import "github.com/cory-johannsen/adventure/internal/game/world"

var directionWords = map[string]world.Direction{
	"n":         world.North,
	"north":     world.North,
	"s":         world.South,
	"south":     world.South,
	"e":         world.East,
	"east":      world.East,
	"w":         world.West,
	"west":      world.West,
	"ne":        world.Northeast,
	"northeast": world.Northeast,
	"nw":        world.Northwest,
	"northwest": world.Northwest,
	"se":        world.Southeast,
	"southeast": world.Southeast,
	"sw":        world.Southwest,
	"southwest": world.Southwest,
}

// IsDirection reports whether word names a compass direction.
//
// Precondition: word is lowercase.
func IsDirection(word string) bool {
	_, ok := directionWords[word]
	return ok
}

// TextToDirection converts a direction word into a Direction.
//
// Precondition: word is lowercase.
// Postcondition: Returns (direction, true) if word is a direction word, or ("", false).
func TextToDirection(word string) (world.Direction, bool) {
	d, ok := directionWords[word]
	return d, ok
}
