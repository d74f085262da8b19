// Package world provides the room graph: directions, rooms held in a Map arena,
// their contents, and the kill protocol that resolves fights inside a room.
package world

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions a room may link in.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists every direction in display order.
var Directions = []Direction{North, South, East, West}

// Opposite returns the reverse of d, or "" for an unknown direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return ""
	}
}

// index maps d to its neighbor slot, or -1.
func (d Direction) index() int {
	switch d {
	case North:
		return 0
	case South:
		return 1
	case East:
		return 2
	case West:
		return 3
	default:
		return -1
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool { return d.index() >= 0 }

// ParseDirection accepts a full direction name or its first letter, ignoring case.
//
// Postcondition: Returns a valid Direction or a non-nil error.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// RoomID is a room's stable index within its Map.
type RoomID int

// NoRoom marks an unset neighbor.
const NoRoom RoomID = -1
