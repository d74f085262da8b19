package inventory_test

import (
	"testing"

	"github.com/cory-johannsen/castle/internal/game/inventory"
	"github.com/cory-johannsen/castle/internal/game/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew_EmptyWithCapacity(t *testing.T) {
	inv := inventory.New(3)
	assert.Equal(t, 3, inv.Capacity())
	assert.Equal(t, 3, inv.Available())
	assert.Len(t, inv.Items(), 3)
}

func TestNew_NegativeCapacityIsZero(t *testing.T) {
	inv := inventory.New(-2)
	assert.Equal(t, 0, inv.Capacity())
	assert.Equal(t, inventory.NoSpace, inv.Add(item.NewPlain("Rock"), inventory.AutoSlot))
}

func TestAdd_AutoPicksLowestEmptySlot(t *testing.T) {
	inv := inventory.New(3)
	a, b, c := item.NewPlain("A"), item.NewPlain("B"), item.NewPlain("C")
	require.Equal(t, inventory.Success, inv.Add(a, inventory.AutoSlot))
	require.Equal(t, inventory.Success, inv.Add(b, inventory.AutoSlot))
	require.Same(t, a, inv.RemoveAt(0))
	require.Equal(t, inventory.Success, inv.Add(c, inventory.AutoSlot))
	assert.Same(t, c, inv.At(0))
	assert.Same(t, b, inv.At(1))
}

func TestAdd_Statuses(t *testing.T) {
	inv := inventory.New(2)
	guarded := item.NewPlain("Copper Key")
	guarded.DisallowPickup()

	assert.Equal(t, inventory.InvalidItem, inv.Add(nil, inventory.AutoSlot))
	assert.Equal(t, inventory.CannotPickup, inv.Add(guarded, inventory.AutoSlot))
	assert.Equal(t, inventory.IndexOutOfRange, inv.Add(item.NewPlain("X"), 2))
	assert.Equal(t, inventory.IndexOutOfRange, inv.Add(item.NewPlain("X"), -5))

	held := item.NewPlain("Sword")
	require.Equal(t, inventory.Success, inv.Add(held, 1))
	assert.Equal(t, inventory.InvalidIndex, inv.Add(item.NewPlain("Food"), 1))
	assert.Equal(t, inventory.AlreadyHeld, inv.Add(held, inventory.AutoSlot))

	require.Equal(t, inventory.Success, inv.Add(item.NewPlain("Food"), inventory.AutoSlot))
	assert.Equal(t, inventory.NoSpace, inv.Add(item.NewPlain("Elixir"), inventory.AutoSlot))
	assert.Equal(t, 0, inv.Available())
}

func TestCheck_DoesNotMutate(t *testing.T) {
	inv := inventory.New(1)
	it := item.NewPlain("Medpack")
	assert.Equal(t, inventory.Success, inv.Check(it, inventory.AutoSlot))
	assert.Equal(t, 1, inv.Available())
	assert.False(t, inv.Contains(it))
}

func TestRemove_ByReferenceNameAndSlot(t *testing.T) {
	inv := inventory.New(3)
	spear := item.NewWeapon("Silver Spear", 1)
	food := item.NewConsumable("Food", 5)
	cross := item.NewPlain("Diamond Cross")
	for _, it := range []*item.Item{spear, food, cross} {
		require.Equal(t, inventory.Success, inv.Add(it, inventory.AutoSlot))
	}

	assert.Same(t, food, inv.Remove(food))
	assert.Nil(t, inv.At(1))
	assert.Same(t, cross, inv.At(2), "removal does not compact")

	assert.Same(t, spear, inv.RemoveNamed("SILVER spear"))
	assert.Nil(t, inv.RemoveNamed("silver spear"))

	assert.Same(t, cross, inv.RemoveAt(2))
	assert.Nil(t, inv.RemoveAt(2))
	assert.Nil(t, inv.RemoveAt(7))
	assert.Nil(t, inv.Remove(nil))
	assert.Equal(t, 3, inv.Available())
}

func TestGet_FirstMatchBySlotOrder(t *testing.T) {
	inv := inventory.New(3)
	first := item.NewPlain("Sword")
	second := item.NewPlain("sword")
	require.Equal(t, inventory.Success, inv.Add(second, 2))
	require.Equal(t, inventory.Success, inv.Add(first, 0))
	assert.Same(t, first, inv.Get("SWORD"))
	assert.Nil(t, inv.Get("Shield"))
	assert.Equal(t, 2, inv.CountNamed("sword"))
}

func TestCountNamed_NilInventory(t *testing.T) {
	var inv *inventory.Inventory
	assert.Equal(t, 0, inv.CountNamed("Sword"))
}

func TestString_ListsEverySlot(t *testing.T) {
	inv := inventory.New(3)
	require.Equal(t, inventory.Success, inv.Add(item.NewPlain("Food"), 1))
	assert.Equal(t, "Inventory Items:\n0 \n1 Food\n2 \n", inv.String())
}

func TestAddStatus_String(t *testing.T) {
	assert.Equal(t, "success", inventory.Success.String())
	assert.Equal(t, "no_space", inventory.NoSpace.String())
	assert.Equal(t, "already_held", inventory.AlreadyHeld.String())
	assert.Equal(t, "add_status(99)", inventory.AddStatus(99).String())
}

func TestProperty_CapacityNeverExceeded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(0, 6).Draw(rt, "capacity")
		inv := inventory.New(capacity)
		n := rapid.IntRange(0, 12).Draw(rt, "adds")
		added := 0
		for i := 0; i < n; i++ {
			status := inv.Add(item.NewPlain("Thing"), inventory.AutoSlot)
			if status == inventory.Success {
				added++
			} else if status != inventory.NoSpace {
				rt.Fatalf("unexpected status %v", status)
			}
		}
		if added > capacity {
			rt.Fatalf("added %d items into capacity %d", added, capacity)
		}
		if inv.Available() != capacity-added {
			rt.Fatalf("available = %d, want %d", inv.Available(), capacity-added)
		}
	})
}

func TestProperty_AddThenRemoveNamedRoundTrips(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 5).Draw(rt, "capacity")
		name := rapid.StringMatching(`[A-Za-z]{1,8}`).Draw(rt, "name")
		inv := inventory.New(capacity)
		it := item.NewPlain(name)
		if inv.Add(it, inventory.AutoSlot) != inventory.Success {
			rt.Fatal("add failed")
		}
		got := inv.RemoveNamed(name)
		if got != it {
			rt.Fatalf("RemoveNamed returned %v, want %v", got, it)
		}
		if inv.Available() != capacity {
			rt.Fatalf("slot not cleared")
		}
	})
}
