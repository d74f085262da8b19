package world

import (
	"fmt"

	"github.com/cory-johannsen/castle/internal/game/enemy"
	"github.com/cory-johannsen/castle/internal/game/item"
)

// EffectCompiler turns a scripted item's source into an Effect.
type EffectCompiler interface {
	Compile(itemName, source string) (item.Effect, error)
}

// Game is one live world built from a Blueprint.
type Game struct {
	Name  string
	Map   *Map
	Start *Room
	// GoalItem is carried into GoalRoom to win. Empty when the world has no goal.
	GoalItem string
	GoalRoom *Room
}

// Build constructs a fresh world. Every call returns rooms, items and enemies
// independent of any earlier build. compiler may be nil when the world has no scripted items.
//
// Precondition: b has passed Validate.
// Postcondition: Returns a Game whose rooms mirror b, or a non-nil error.
func (b *Blueprint) Build(compiler EffectCompiler) (*Game, error) {
	m := NewMap()
	byID := make(map[string]*Room, len(b.Rooms))
	for _, rd := range b.Rooms {
		r := m.NewRoom(rd.Name)
		if rd.Locked {
			r.Lock()
		}
		r.SetKey(rd.Key)
		byID[rd.ID] = r
	}

	for _, rd := range b.Rooms {
		r := byID[rd.ID]
		for _, d := range Directions {
			target, ok := rd.exit(d)
			if !ok {
				continue
			}
			other := byID[target]
			if n, linked := r.Neighbor(d); linked && n == other {
				continue
			}
			if !r.Link(d, other) {
				return nil, fmt.Errorf("room %q: cannot link %s to %q", rd.ID, d, target)
			}
		}
		if err := populate(r, rd, compiler); err != nil {
			return nil, err
		}
	}

	g := &Game{
		Name:     b.Name,
		Map:      m,
		Start:    byID[b.StartRoom],
		GoalItem: b.Goal.Item,
		GoalRoom: byID[b.Goal.Room],
	}
	if g.Start == nil {
		return nil, fmt.Errorf("start_room %q: %w", b.StartRoom, ErrUnknownRoom)
	}
	return g, nil
}

func populate(r *Room, rd RoomDef, compiler EffectCompiler) error {
	for _, id := range rd.Items {
		it, err := buildItem(id, compiler)
		if err != nil {
			return fmt.Errorf("room %q: %w", rd.ID, err)
		}
		r.AddItem(it)
	}
	for _, ed := range rd.Enemies {
		e, err := buildEnemy(r, ed)
		if err != nil {
			return fmt.Errorf("room %q: %w", rd.ID, err)
		}
		r.AddEnemy(e)
	}
	return nil
}

func buildItem(id ItemDef, compiler EffectCompiler) (*item.Item, error) {
	switch id.Kind {
	case "", ItemPlain:
		return item.NewPlain(id.Name), nil
	case ItemWeapon:
		return item.NewWeapon(id.Name, id.Bonus), nil
	case ItemConsumable:
		return item.NewConsumable(id.Name, id.Heal), nil
	case ItemScripted:
		if compiler == nil {
			return nil, fmt.Errorf("item %q: scripted items need a script engine", id.Name)
		}
		eff, err := compiler.Compile(id.Name, id.Script)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", id.Name, err)
		}
		return item.New(id.Name, eff), nil
	default:
		return nil, fmt.Errorf("item %q: unknown kind %q", id.Name, id.Kind)
	}
}

func buildEnemy(r *Room, ed EnemyDef) (*enemy.Enemy, error) {
	kind, err := enemy.ParseKind(ed.Kind)
	if err != nil {
		return nil, err
	}
	stats := enemy.DefaultStats(kind)
	if ed.Health > 0 {
		stats.Health = ed.Health
	}
	if ed.Damage > 0 {
		stats.Damage = ed.Damage
	}
	var mod enemy.Modifier
	if len(ed.Modifiers) > 0 {
		rules := make(enemy.RuleModifier, 0, len(ed.Modifiers))
		for _, md := range ed.Modifiers {
			rules = append(rules, enemy.Rule{Item: md.Item, Delta: md.Delta})
		}
		mod = rules
	}
	var guarded *item.Item
	if ed.Guards != "" {
		if guarded = r.Item(ed.Guards); guarded == nil {
			return nil, fmt.Errorf("enemy %q: guarded item %q not in room", ed.Name, ed.Guards)
		}
	}
	return enemy.New(ed.Name, kind, stats, mod, guarded), nil
}
