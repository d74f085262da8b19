package world

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/castle/internal/game/enemy"
	"github.com/cory-johannsen/castle/internal/game/item"
)

// Room is a node of the world graph holding the items and enemies present in it.
type Room struct {
	id        RoomID
	world     *Map
	name      string
	locked    bool
	key       string
	items     []*item.Item
	enemies   []*enemy.Enemy
	neighbors [4]RoomID
}

// ID returns the room's index within its Map.
func (r *Room) ID() RoomID { return r.id }

// Name returns the room's display name.
func (r *Room) Name() string { return r.name }

// Link connects r to other in direction dir and other back to r in the opposite direction.
//
// Precondition: none; all inputs are validated.
// Postcondition: returns true and both links are set, or returns false and neither room changed.
// Fails when other is nil, is r, belongs to another Map, or either side's slot is already taken.
func (r *Room) Link(dir Direction, other *Room) bool {
	i := dir.index()
	if i < 0 || other == nil || other == r || other.world != r.world {
		return false
	}
	j := dir.Opposite().index()
	if r.neighbors[i] != NoRoom || other.neighbors[j] != NoRoom {
		return false
	}
	r.neighbors[i] = other.id
	other.neighbors[j] = r.id
	return true
}

// Grow creates a new room named name and links it in direction dir.
// Returns nil, creating nothing, if dir is invalid or already linked.
func (r *Room) Grow(dir Direction, name string) *Room {
	i := dir.index()
	if i < 0 || r.neighbors[i] != NoRoom {
		return nil
	}
	other := r.world.NewRoom(name)
	r.Link(dir, other)
	return other
}

// Neighbor returns the room linked in direction dir.
func (r *Room) Neighbor(dir Direction) (*Room, bool) {
	i := dir.index()
	if i < 0 {
		return nil, false
	}
	return r.world.Room(r.neighbors[i])
}

// Exit pairs a direction with the room it leads to.
type Exit struct {
	Direction Direction
	Room      *Room
}

// Exits returns the linked neighbors in north, south, east, west order.
func (r *Room) Exits() []Exit {
	var exits []Exit
	for _, d := range Directions {
		if n, ok := r.Neighbor(d); ok {
			exits = append(exits, Exit{Direction: d, Room: n})
		}
	}
	return exits
}

// IsLocked reports whether entry is currently barred.
func (r *Room) IsLocked() bool { return r.locked }

// Lock bars entry.
func (r *Room) Lock() { r.locked = true }

// Unlock allows entry.
func (r *Room) Unlock() { r.locked = false }

// Key returns the name of the item that unlocks the room; empty when none does.
func (r *Room) Key() string { return r.key }

// SetKey sets the name of the item that unlocks the room.
func (r *Room) SetKey(name string) { r.key = name }

// Items returns a snapshot of the items present, in insertion order.
func (r *Room) Items() []*item.Item {
	out := make([]*item.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Enemies returns a snapshot of the enemies present, in insertion order.
func (r *Room) Enemies() []*enemy.Enemy {
	out := make([]*enemy.Enemy, len(r.enemies))
	copy(out, r.enemies)
	return out
}

// AddItem places it in the room. Returns false for nil or an item already present.
func (r *Room) AddItem(it *item.Item) bool {
	if it == nil {
		return false
	}
	for _, existing := range r.items {
		if existing == it {
			return false
		}
	}
	r.items = append(r.items, it)
	return true
}

// Item returns the first item present named name, ignoring case.
func (r *Room) Item(name string) *item.Item {
	for _, it := range r.items {
		if it.Is(name) {
			return it
		}
	}
	return nil
}

// RemoveItem takes it out of the room. Returns nil if it is not present.
func (r *Room) RemoveItem(it *item.Item) *item.Item {
	for i, existing := range r.items {
		if existing == it {
			return r.RemoveItemAt(i)
		}
	}
	return nil
}

// RemoveItemNamed removes the first item named name, ignoring case.
func (r *Room) RemoveItemNamed(name string) *item.Item {
	for i, it := range r.items {
		if it.Is(name) {
			return r.RemoveItemAt(i)
		}
	}
	return nil
}

// RemoveItemAt removes the item at position i of Items.
func (r *Room) RemoveItemAt(i int) *item.Item {
	if i < 0 || i >= len(r.items) {
		return nil
	}
	it := r.items[i]
	r.items = append(r.items[:i], r.items[i+1:]...)
	return it
}

// AddEnemy places e in the room. Returns false for nil or an enemy already present.
func (r *Room) AddEnemy(e *enemy.Enemy) bool {
	if e == nil {
		return false
	}
	for _, existing := range r.enemies {
		if existing == e {
			return false
		}
	}
	r.enemies = append(r.enemies, e)
	return true
}

// Enemy returns the first enemy present named name, ignoring case.
func (r *Room) Enemy(name string) *enemy.Enemy {
	if i := r.enemyIndex(name); i >= 0 {
		return r.enemies[i]
	}
	return nil
}

func (r *Room) enemyIndex(name string) int {
	for i, e := range r.enemies {
		if strings.EqualFold(e.Name(), name) {
			return i
		}
	}
	return -1
}

// RemoveEnemyNamed removes the first enemy named name, ignoring case.
func (r *Room) RemoveEnemyNamed(name string) *enemy.Enemy {
	return r.RemoveEnemyAt(r.enemyIndex(name))
}

// RemoveEnemyAt removes the enemy at position i of Enemies.
func (r *Room) RemoveEnemyAt(i int) *enemy.Enemy {
	if i < 0 || i >= len(r.enemies) {
		return nil
	}
	e := r.enemies[i]
	r.enemies = append(r.enemies[:i], r.enemies[i+1:]...)
	return e
}

// Description renders the room, its enemies, items and exits as one line of prose.
func (r *Room) Description() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are in a %s. ", r.name)
	for _, e := range r.enemies {
		if e.IsDead() {
			fmt.Fprintf(&b, "There is a dead %s here. ", e.Name())
		} else {
			fmt.Fprintf(&b, "There is a %s here. ", e.Name())
		}
	}
	for _, it := range r.items {
		fmt.Fprintf(&b, "You see a %s here. ", it.Name())
	}
	for _, ex := range r.Exits() {
		fmt.Fprintf(&b, "There is a %s to the %s. ", ex.Room.Name(), ex.Direction)
	}
	return b.String()
}

// String returns Description.
func (r *Room) String() string { return r.Description() }
