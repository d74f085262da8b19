package item

import "strings"

// Holder is the set of player capabilities an Effect may act upon.
type Holder interface {
	// Damage returns the holder's current damage stat.
	Damage() int
	// SetDamage replaces the holder's damage stat.
	SetDamage(d int)
	// Health returns the holder's current health.
	Health() int
	// Heal raises the holder's health, clamped to its maximum.
	Heal(amount int)
	// DropItem removes it from the holder's inventory and returns it, or nil if not held.
	DropItem(it *Item) *Item
}

// Effect carries the hooks fired by the owning player when an item changes hands or is used.
type Effect interface {
	OnPickup(h Holder, it *Item)
	OnDropped(h Holder, it *Item)
	OnUsed(h Holder, it *Item)
}

// Item is a named object that can lie in a room or occupy an inventory slot.
// Names are compared case-insensitively.
type Item struct {
	name       string
	pickupable bool
	effect     Effect
}

// New creates a pickupable item with the given effect. A nil effect behaves as Plain.
//
// Precondition: name must be non-empty.
// Postcondition: CanPickup() returns true.
func New(name string, effect Effect) *Item {
	if effect == nil {
		effect = Plain{}
	}
	return &Item{name: name, pickupable: true, effect: effect}
}

// NewPlain creates an item whose hooks do nothing.
func NewPlain(name string) *Item {
	return New(name, Plain{})
}

// NewWeapon creates an item that adds bonus to its holder's damage while held.
func NewWeapon(name string, bonus int) *Item {
	return New(name, Weapon{Bonus: bonus})
}

// NewConsumable creates an item that heals its holder by heal and is consumed on use.
func NewConsumable(name string, heal int) *Item {
	return New(name, Consumable{Heal: heal})
}

// Name returns the item's display name.
func (i *Item) Name() string { return i.name }

// Is reports whether the item's name equals name, ignoring case.
func (i *Item) Is(name string) bool {
	return strings.EqualFold(i.name, name)
}

// CanPickup reports whether the item may currently be placed in an inventory.
func (i *Item) CanPickup() bool { return i.pickupable }

// AllowPickup marks the item as pickupable.
func (i *Item) AllowPickup() { i.pickupable = true }

// DisallowPickup marks the item as not pickupable.
func (i *Item) DisallowPickup() { i.pickupable = false }

// Effect returns the item's hook implementation.
func (i *Item) Effect() Effect { return i.effect }

// Pickup fires the pickup hook against h.
func (i *Item) Pickup(h Holder) { i.effect.OnPickup(h, i) }

// Dropped fires the drop hook against h.
func (i *Item) Dropped(h Holder) { i.effect.OnDropped(h, i) }

// Use fires the use hook against h.
func (i *Item) Use(h Holder) { i.effect.OnUsed(h, i) }

// String returns the item's name.
func (i *Item) String() string { return i.name }
