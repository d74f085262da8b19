package world

import (
	"errors"
	"strings"
)

// ErrUnknownRoom is returned when a room reference does not resolve.
var ErrUnknownRoom = errors.New("unknown room")

// Map is an arena that owns every Room of one world. Rooms refer to their
// neighbors by RoomID and resolve them through the Map.
//
// A Map is not safe for concurrent use; each game owns its own.
type Map struct {
	rooms []*Room
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{}
}

// NewRoom adds an unlinked, unlocked, empty room named name.
//
// Postcondition: the returned room's ID resolves to it via Room.
func (m *Map) NewRoom(name string) *Room {
	r := &Room{
		id:        RoomID(len(m.rooms)),
		world:     m,
		name:      name,
		neighbors: [4]RoomID{NoRoom, NoRoom, NoRoom, NoRoom},
	}
	m.rooms = append(m.rooms, r)
	return r
}

// Room resolves id.
func (m *Map) Room(id RoomID) (*Room, bool) {
	if id < 0 || int(id) >= len(m.rooms) {
		return nil, false
	}
	return m.rooms[id], true
}

// RoomNamed returns the first room whose name matches name ignoring case.
func (m *Map) RoomNamed(name string) (*Room, bool) {
	for _, r := range m.rooms {
		if strings.EqualFold(r.name, name) {
			return r, true
		}
	}
	return nil, false
}

// Rooms returns every room in creation order.
func (m *Map) Rooms() []*Room {
	out := make([]*Room, len(m.rooms))
	copy(out, m.rooms)
	return out
}

// Len returns the number of rooms.
func (m *Map) Len() int { return len(m.rooms) }
