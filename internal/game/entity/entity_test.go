package entity_test

import (
	"testing"

	"github.com/cory-johannsen/castle/internal/game/entity"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNew_FullHealth(t *testing.T) {
	e := entity.New(12, 1)
	assert.Equal(t, 12, e.Health())
	assert.Equal(t, 12, e.MaxHealth())
	assert.Equal(t, 1, e.Damage())
	assert.False(t, e.IsDead())
}

func TestTakeDamage_DeathHookFiresOnce(t *testing.T) {
	e := entity.New(3, 1)
	deaths := 0
	e.OnDeath(func() { deaths++ })

	assert.Equal(t, 2, e.TakeDamage(2, nil))
	assert.Equal(t, 0, deaths)
	e.TakeDamage(1, nil)
	assert.True(t, e.IsDead())
	assert.Equal(t, 1, deaths)
	e.TakeDamage(5, nil)
	assert.Equal(t, 1, deaths)
	assert.Equal(t, -5, e.Health())
}

func TestTakeDamage_NegativeAmountClampsToMax(t *testing.T) {
	e := entity.New(10, 1)
	e.TakeDamage(4, nil)
	e.TakeDamage(-20, nil)
	assert.Equal(t, 10, e.Health())
}

func TestHeal_NegativeAmountKills(t *testing.T) {
	e := entity.New(6, 1)
	deaths := 0
	e.OnDeath(func() { deaths++ })

	e.Heal(-10)
	assert.True(t, e.IsDead())
	assert.Equal(t, -4, e.Health())
	assert.Equal(t, 1, deaths)

	e.Heal(-1)
	assert.Equal(t, 1, deaths)
}

func TestDealDamage_UsesDamageStat(t *testing.T) {
	attacker := entity.New(5, 3)
	target := entity.New(10, 1)
	assert.Equal(t, 3, attacker.DealDamage(target))
	assert.Equal(t, 7, target.Health())
	attacker.SetDamage(4)
	attacker.DealDamage(target)
	assert.Equal(t, 3, target.Health())
}

func TestProperty_TakeDamageSubtractsExactly(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		max := rapid.IntRange(1, 100).Draw(rt, "max")
		d := rapid.IntRange(0, 200).Draw(rt, "damage")
		e := entity.New(max, 1)
		deaths := 0
		e.OnDeath(func() { deaths++ })
		e.TakeDamage(d, nil)
		if e.Health() != max-d {
			rt.Fatalf("health = %d, want %d", e.Health(), max-d)
		}
		if e.IsDead() != (max-d <= 0) {
			rt.Fatalf("IsDead = %v with health %d", e.IsDead(), e.Health())
		}
		want := 0
		if e.IsDead() {
			want = 1
		}
		if deaths != want {
			rt.Fatalf("deaths = %d, want %d", deaths, want)
		}
	})
}

func TestProperty_HealClampsToMax(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		max := rapid.IntRange(1, 100).Draw(rt, "max")
		d := rapid.IntRange(0, max-1).Draw(rt, "damage")
		h := rapid.IntRange(0, 200).Draw(rt, "heal")
		e := entity.New(max, 1)
		e.TakeDamage(d, nil)
		old := e.Health()
		e.Heal(h)
		want := old + h
		if want > max {
			want = max
		}
		if e.Health() != want {
			rt.Fatalf("health = %d, want %d", e.Health(), want)
		}
	})
}

func TestOnDeath_HooksRunInOrder(t *testing.T) {
	e := entity.New(1, 1)
	var order []string
	e.OnDeath(func() { order = append(order, "first") })
	e.OnDeath(func() { order = append(order, "second") })
	e.TakeDamage(1, nil)
	assert.Equal(t, []string{"first", "second"}, order)
}
