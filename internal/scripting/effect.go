package scripting

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/castle/internal/game/item"
)

// Effect is an item.Effect whose hooks are Lua functions.
type Effect struct {
	engine *Engine
	name   string
	env    *lua.LTable
}

// OnPickup calls on_pickup(player, item_name) if defined.
func (s *Effect) OnPickup(h item.Holder, it *item.Item) {
	s.engine.call(s.env, s.name, HookPickup, h, it)
}

// OnDropped calls on_dropped(player, item_name) if defined.
func (s *Effect) OnDropped(h item.Holder, it *item.Item) {
	s.engine.call(s.env, s.name, HookDropped, h, it)
}

// OnUsed calls on_used(player, item_name) if defined.
func (s *Effect) OnUsed(h item.Holder, it *item.Item) {
	s.engine.call(s.env, s.name, HookUsed, h, it)
}
