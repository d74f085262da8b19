package inventory

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/castle/internal/game/item"
)

// AutoSlot requests the lowest-index empty slot.
const AutoSlot = -1

// AddStatus is the outcome of an Add or Check.
type AddStatus int

const (
	Success AddStatus = iota
	NoSpace
	CannotPickup
	InvalidIndex
	IndexOutOfRange
	InvalidItem
	// AlreadyHeld reports that the same item already occupies a slot.
	AlreadyHeld
)

// String returns a short lowercase name for the status.
func (s AddStatus) String() string {
	switch s {
	case Success:
		return "success"
	case NoSpace:
		return "no_space"
	case CannotPickup:
		return "cannot_pickup"
	case InvalidIndex:
		return "invalid_index"
	case IndexOutOfRange:
		return "index_out_of_range"
	case InvalidItem:
		return "invalid_item"
	case AlreadyHeld:
		return "already_held"
	default:
		return fmt.Sprintf("add_status(%d)", int(s))
	}
}

// Inventory is a fixed-capacity array of item slots. Slots never shift:
// removing an item leaves its slot empty.
type Inventory struct {
	slots []*item.Item
}

// New creates an empty Inventory with capacity slots.
//
// Precondition: capacity >= 0.
// Postcondition: Available() == Capacity() == capacity.
func New(capacity int) *Inventory {
	if capacity < 0 {
		capacity = 0
	}
	return &Inventory{slots: make([]*item.Item, capacity)}
}

// Capacity returns the fixed number of slots.
func (inv *Inventory) Capacity() int { return len(inv.slots) }

// Check reports the status Add would return for it and slot, without modifying the inventory.
func (inv *Inventory) Check(it *item.Item, slot int) AddStatus {
	_, status := inv.resolve(it, slot)
	return status
}

// Add places it in slot, or in the lowest empty slot when slot is AutoSlot.
//
// Precondition: none; all inputs are validated.
// Postcondition: on Success it occupies exactly one slot; on any other status the inventory is unchanged.
func (inv *Inventory) Add(it *item.Item, slot int) AddStatus {
	idx, status := inv.resolve(it, slot)
	if status != Success {
		return status
	}
	inv.slots[idx] = it
	return Success
}

func (inv *Inventory) resolve(it *item.Item, slot int) (int, AddStatus) {
	if it == nil {
		return -1, InvalidItem
	}
	if inv.indexOf(it) >= 0 {
		return -1, AlreadyHeld
	}
	if !it.CanPickup() {
		return -1, CannotPickup
	}
	if slot == AutoSlot {
		for i, s := range inv.slots {
			if s == nil {
				return i, Success
			}
		}
		return -1, NoSpace
	}
	if slot < 0 || slot >= len(inv.slots) {
		return -1, IndexOutOfRange
	}
	if inv.slots[slot] != nil {
		return -1, InvalidIndex
	}
	return slot, Success
}

func (inv *Inventory) indexOf(it *item.Item) int {
	for i, s := range inv.slots {
		if s == it {
			return i
		}
	}
	return -1
}

func (inv *Inventory) indexNamed(name string) int {
	for i, s := range inv.slots {
		if s != nil && s.Is(name) {
			return i
		}
	}
	return -1
}

// Remove takes it out of its slot and returns it, or nil if it is not held.
func (inv *Inventory) Remove(it *item.Item) *item.Item {
	if it == nil {
		return nil
	}
	return inv.RemoveAt(inv.indexOf(it))
}

// RemoveNamed removes the first item, in slot order, whose name matches name ignoring case.
func (inv *Inventory) RemoveNamed(name string) *item.Item {
	return inv.RemoveAt(inv.indexNamed(name))
}

// RemoveAt empties slot and returns what it held; nil for an empty or invalid slot.
func (inv *Inventory) RemoveAt(slot int) *item.Item {
	if slot < 0 || slot >= len(inv.slots) {
		return nil
	}
	it := inv.slots[slot]
	inv.slots[slot] = nil
	return it
}

// Get returns the first item named name, ignoring case, or nil.
func (inv *Inventory) Get(name string) *item.Item {
	idx := inv.indexNamed(name)
	if idx < 0 {
		return nil
	}
	return inv.slots[idx]
}

// At returns the item in slot, or nil for an empty or invalid slot.
func (inv *Inventory) At(slot int) *item.Item {
	if slot < 0 || slot >= len(inv.slots) {
		return nil
	}
	return inv.slots[slot]
}

// Contains reports whether it occupies a slot.
func (inv *Inventory) Contains(it *item.Item) bool {
	return it != nil && inv.indexOf(it) >= 0
}

// CountNamed returns the number of slots holding an item named name, ignoring case.
// A nil inventory holds nothing.
func (inv *Inventory) CountNamed(name string) int {
	if inv == nil {
		return 0
	}
	n := 0
	for _, s := range inv.slots {
		if s != nil && s.Is(name) {
			n++
		}
	}
	return n
}

// Available returns the number of empty slots.
func (inv *Inventory) Available() int {
	n := 0
	for _, s := range inv.slots {
		if s == nil {
			n++
		}
	}
	return n
}

// Items returns a snapshot of the slots; empty slots are nil.
func (inv *Inventory) Items() []*item.Item {
	out := make([]*item.Item, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// String lists every slot with its index; empty slots have no name.
func (inv *Inventory) String() string {
	var b strings.Builder
	b.WriteString("Inventory Items:\n")
	for i, s := range inv.slots {
		name := ""
		if s != nil {
			name = s.Name()
		}
		fmt.Fprintf(&b, "%d %s\n", i, name)
	}
	return b.String()
}
