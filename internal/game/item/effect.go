package item

// Plain is an Effect whose hooks do nothing.
type Plain struct{}

func (Plain) OnPickup(Holder, *Item)  {}
func (Plain) OnDropped(Holder, *Item) {}
func (Plain) OnUsed(Holder, *Item)    {}

// Weapon raises its holder's damage by Bonus while held.
//
// OnPickup and OnDropped must be called in matched pairs; unmatched calls skew the holder's damage.
type Weapon struct {
	Bonus int
}

// OnPickup adds Bonus to the holder's damage.
func (w Weapon) OnPickup(h Holder, _ *Item) {
	h.SetDamage(h.Damage() + w.Bonus)
}

// OnDropped subtracts Bonus from the holder's damage.
func (w Weapon) OnDropped(h Holder, _ *Item) {
	h.SetDamage(h.Damage() - w.Bonus)
}

func (Weapon) OnUsed(Holder, *Item) {}

// Consumable heals its holder by Heal when used, then removes itself from the holder.
type Consumable struct {
	Heal int
}

func (Consumable) OnPickup(Holder, *Item)  {}
func (Consumable) OnDropped(Holder, *Item) {}

// OnUsed heals the holder and consumes it.
//
// Postcondition: it is no longer held by h.
func (c Consumable) OnUsed(h Holder, it *Item) {
	h.Heal(c.Heal)
	h.DropItem(it)
}
