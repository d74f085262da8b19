// Package entity provides the base combat actor shared by players and enemies.
package entity

import "github.com/cory-johannsen/castle/internal/game/inventory"

// Combatant is anything that can trade blows in a kill loop.
type Combatant interface {
	// TakeDamage applies amount, possibly modified by the attacker's inventory,
	// and returns the damage actually applied. attacker may be nil.
	TakeDamage(amount int, attacker *inventory.Inventory) int
	// DealDamage strikes target once and returns the damage target applied.
	DealDamage(target Combatant) int
	// IsDead reports whether health has reached zero or below.
	IsDead() bool
}

// Entity holds health and damage and fires a death hook on the alive to dead transition.
type Entity struct {
	maxHealth     int
	currentHealth int
	damage        int
	onDeath       []func()
}

// New creates a living Entity at full health.
//
// Precondition: maxHealth > 0.
// Postcondition: Health() == MaxHealth() == maxHealth; Damage() == damage.
func New(maxHealth, damage int) *Entity {
	return &Entity{
		maxHealth:     maxHealth,
		currentHealth: maxHealth,
		damage:        damage,
	}
}

// OnDeath registers fn to run when the entity dies. Hooks run in registration order.
func (e *Entity) OnDeath(fn func()) { e.onDeath = append(e.onDeath, fn) }

// MaxHealth returns the health ceiling.
func (e *Entity) MaxHealth() int { return e.maxHealth }

// Health returns the current health.
func (e *Entity) Health() int { return e.currentHealth }

// Damage returns the damage dealt per strike.
func (e *Entity) Damage() int { return e.damage }

// SetDamage replaces the damage dealt per strike.
func (e *Entity) SetDamage(d int) { e.damage = d }

// IsDead reports whether health is at or below zero.
func (e *Entity) IsDead() bool { return e.currentHealth <= 0 }

// TakeDamage subtracts amount from health. The attacker's inventory is ignored here;
// enemy kinds consult it before delegating.
//
// Postcondition: if the entity was alive and is now dead, the death hook has fired exactly once.
// Returns amount.
func (e *Entity) TakeDamage(amount int, _ *inventory.Inventory) int {
	wasDead := e.IsDead()
	e.currentHealth -= amount
	if e.currentHealth > e.maxHealth {
		e.currentHealth = e.maxHealth
	}
	if !wasDead && e.IsDead() {
		for _, fn := range e.onDeath {
			fn()
		}
	}
	return amount
}

// DealDamage strikes target with the entity's damage and no inventory.
func (e *Entity) DealDamage(target Combatant) int {
	return target.TakeDamage(e.damage, nil)
}

// Heal raises health by amount without exceeding the maximum. A negative amount
// is applied as damage so the death hook still fires.
//
// Postcondition: Health() == min(MaxHealth(), old+amount).
func (e *Entity) Heal(amount int) {
	if amount < 0 {
		e.TakeDamage(-amount, nil)
		return
	}
	e.currentHealth += amount
	if e.currentHealth > e.maxHealth {
		e.currentHealth = e.maxHealth
	}
}
