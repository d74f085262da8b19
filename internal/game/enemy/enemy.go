// Package enemy implements named hostile combatants that may guard an item.
package enemy

import (
	"fmt"

	"github.com/cory-johannsen/castle/internal/game/entity"
	"github.com/cory-johannsen/castle/internal/game/inventory"
	"github.com/cory-johannsen/castle/internal/game/item"
)

// Kind selects an enemy's default stats and damage modifier.
type Kind string

const (
	KindPlain    Kind = "plain"
	KindWerewolf Kind = "werewolf"
	KindVampire  Kind = "vampire"
	// KindCustom enemies carry modifier rules supplied by world content.
	KindCustom Kind = "custom"
)

// Stats are an enemy's starting health and damage.
type Stats struct {
	Health int
	Damage int
}

// DefaultStats returns the stats used when content does not override them.
func DefaultStats(k Kind) Stats {
	switch k {
	case KindWerewolf:
		return Stats{Health: 12, Damage: 2}
	case KindVampire:
		return Stats{Health: 12, Damage: 3}
	default:
		return Stats{Health: 5, Damage: 1}
	}
}

// ModifierFor returns the built-in modifier for k; custom and plain enemies are unmodified.
func ModifierFor(k Kind) Modifier {
	switch k {
	case KindWerewolf:
		return WerewolfRules
	case KindVampire:
		return VampireRules
	default:
		return Unmodified
	}
}

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindPlain, KindWerewolf, KindVampire, KindCustom:
		return k, nil
	case "":
		return KindPlain, nil
	default:
		return "", fmt.Errorf("enemy: unknown kind %q", s)
	}
}

// Enemy is a named Combatant whose incoming damage passes through a Modifier.
type Enemy struct {
	*entity.Entity
	name     string
	kind     Kind
	guarded  *item.Item
	modifier Modifier
}

// New creates an Enemy. If guarded is non-nil it becomes unpickupable until the enemy dies.
//
// Precondition: name must be non-empty; stats.Health > 0.
// Postcondition: guarded, if set, has CanPickup() == false.
func New(name string, kind Kind, stats Stats, modifier Modifier, guarded *item.Item) *Enemy {
	if modifier == nil {
		modifier = ModifierFor(kind)
	}
	e := &Enemy{
		Entity:   entity.New(stats.Health, stats.Damage),
		name:     name,
		kind:     kind,
		guarded:  guarded,
		modifier: modifier,
	}
	if guarded != nil {
		guarded.DisallowPickup()
	}
	e.Entity.OnDeath(e.release)
	return e
}

// NewPlain creates an unmodified enemy with explicit stats.
func NewPlain(name string, health, damage int, guarded *item.Item) *Enemy {
	return New(name, KindPlain, Stats{Health: health, Damage: damage}, nil, guarded)
}

// NewWerewolf creates a werewolf with explicit stats.
func NewWerewolf(name string, health, damage int, guarded *item.Item) *Enemy {
	return New(name, KindWerewolf, Stats{Health: health, Damage: damage}, nil, guarded)
}

// NewVampire creates a vampire with explicit stats.
func NewVampire(name string, health, damage int, guarded *item.Item) *Enemy {
	return New(name, KindVampire, Stats{Health: health, Damage: damage}, nil, guarded)
}

func (e *Enemy) release() {
	if e.guarded != nil {
		e.guarded.AllowPickup()
	}
}

// Name returns the enemy's display name.
func (e *Enemy) Name() string { return e.name }

// Kind returns the enemy's kind.
func (e *Enemy) Kind() Kind { return e.kind }

// Guarded returns the guarded item, or nil.
func (e *Enemy) Guarded() *item.Item { return e.guarded }

// TakeDamage modifies amount by the attacker's inventory and applies the result.
// Returns the modified damage.
func (e *Enemy) TakeDamage(amount int, attacker *inventory.Inventory) int {
	return e.Entity.TakeDamage(e.modifier.Modify(amount, attacker), attacker)
}

// DealDamage strikes target with the enemy's damage.
func (e *Enemy) DealDamage(target entity.Combatant) int {
	return target.TakeDamage(e.Damage(), nil)
}

// String returns a short status line.
func (e *Enemy) String() string {
	return fmt.Sprintf("%s\nHP: %d/%d\nDamage: %d\n", e.name, e.Health(), e.MaxHealth(), e.Damage())
}
