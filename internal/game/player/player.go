// Package player implements the adventurer: a combatant with an inventory and experience.
package player

import (
	"fmt"

	"github.com/cory-johannsen/castle/internal/game/entity"
	"github.com/cory-johannsen/castle/internal/game/inventory"
	"github.com/cory-johannsen/castle/internal/game/item"
)

// Player is an Entity that owns an Inventory and earns experience from damage dealt.
//
// Hook ordering: a pickup hook fires after the inventory has accepted the item
// in principle and before it is inserted; a drop hook fires after the item has
// left its slot. Failed pickups and drops of unheld items fire no hook.
type Player struct {
	*entity.Entity
	xp  int
	inv *inventory.Inventory
}

// New creates a Player with an empty inventory of capacity slots.
//
// Precondition: health > 0; capacity >= 0.
// Postcondition: XP() == 0.
func New(health, damage, capacity int) *Player {
	return &Player{
		Entity: entity.New(health, damage),
		inv:    inventory.New(capacity),
	}
}

// Inventory returns the player's inventory. Callers that mutate it directly bypass item hooks.
func (p *Player) Inventory() *inventory.Inventory { return p.inv }

// XP returns the experience accumulated from damage dealt.
func (p *Player) XP() int { return p.xp }

// AddItem places it in the lowest empty slot and fires its pickup hook.
//
// Postcondition: on Success it is held and its pickup hook fired exactly once;
// otherwise nothing changed.
func (p *Player) AddItem(it *item.Item) inventory.AddStatus {
	if status := p.inv.Check(it, inventory.AutoSlot); status != inventory.Success {
		return status
	}
	it.Pickup(p)
	return p.inv.Add(it, inventory.AutoSlot)
}

// DropItem removes it from the inventory and fires its drop hook. Returns nil if it is not held.
func (p *Player) DropItem(it *item.Item) *item.Item {
	return p.dropped(p.inv.Remove(it))
}

// DropItemNamed drops the first held item named name, ignoring case.
func (p *Player) DropItemNamed(name string) *item.Item {
	return p.dropped(p.inv.RemoveNamed(name))
}

// DropItemAt drops the item in slot.
func (p *Player) DropItemAt(slot int) *item.Item {
	return p.dropped(p.inv.RemoveAt(slot))
}

func (p *Player) dropped(it *item.Item) *item.Item {
	if it != nil {
		it.Dropped(p)
	}
	return it
}

// UseItem fires the use hook of the held item named like it. Returns false if no such item is held.
func (p *Player) UseItem(it *item.Item) bool {
	if it == nil {
		return false
	}
	return p.UseItemNamed(it.Name())
}

// UseItemNamed fires the use hook of the first held item named name.
func (p *Player) UseItemNamed(name string) bool {
	held := p.inv.Get(name)
	if held == nil {
		return false
	}
	held.Use(p)
	return true
}

// Holds reports whether an item named name is in the inventory.
func (p *Player) Holds(name string) bool {
	return p.inv.Get(name) != nil
}

// DealDamage strikes target with the player's damage and inventory, and adds the
// applied damage to XP. Non-positive results award nothing.
func (p *Player) DealDamage(target entity.Combatant) int {
	dealt := target.TakeDamage(p.Damage(), p.inv)
	if dealt > 0 {
		p.xp += dealt
	}
	return dealt
}

// String renders the player's stats followed by the inventory listing.
func (p *Player) String() string {
	return fmt.Sprintf("Player:\nHP: %d/%d\nDamage: %d\nXP: %d\n%s",
		p.Health(), p.MaxHealth(), p.Damage(), p.xp, p.inv)
}

var (
	_ item.Holder      = (*Player)(nil)
	_ entity.Combatant = (*Player)(nil)
)
