package enemy

import "github.com/cory-johannsen/castle/internal/game/inventory"

// Modifier adjusts incoming damage based on the attacker's inventory.
type Modifier interface {
	// Modify returns the damage to apply given the base amount. attacker may be nil.
	Modify(amount int, attacker *inventory.Inventory) int
}

// Rule adds Delta to incoming damage for every attacker slot holding an item named Item.
type Rule struct {
	Item  string
	Delta int
}

// RuleModifier applies each Rule once per matching slot. Rules stack, and slot order is irrelevant.
type RuleModifier []Rule

// Modify sums every matching rule's delta into amount.
func (m RuleModifier) Modify(amount int, attacker *inventory.Inventory) int {
	for _, r := range m {
		amount += r.Delta * attacker.CountNamed(r.Item)
	}
	return amount
}

// Unmodified leaves incoming damage as is.
var Unmodified Modifier = RuleModifier(nil)

// WerewolfRules add 3 per Silver Spear.
var WerewolfRules = RuleModifier{
	{Item: "Silver Spear", Delta: 3},
}

// VampireRules subtract 1 per Sword and add 4 per Diamond Cross.
var VampireRules = RuleModifier{
	{Item: "Sword", Delta: -1},
	{Item: "Diamond Cross", Delta: 4},
}
