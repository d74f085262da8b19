package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/castle/internal/game/item"
)

// Hook names looked up in a compiled script.
const (
	HookPickup  = "on_pickup"
	HookDropped = "on_dropped"
	HookUsed    = "on_used"
)

// Engine owns one sandboxed VM and compiles item scripts into item.Effect values.
// Each script runs in its own environment table so scripts cannot see each other's globals.
//
// An Engine is not safe for concurrent use; each game owns its own. Hooks may
// re-enter the engine, as when on_used consumes its item and fires on_dropped.
type Engine struct {
	L      *lua.LState
	limit  int
	depth  int
	logger *zap.Logger
}

// NewEngine creates an Engine whose hook calls are limited to instLimit opcodes each.
//
// Precondition: logger must be non-nil; instLimit >= 0 (0 uses DefaultInstructionLimit).
// Postcondition: the caller must call Close when done.
func NewEngine(instLimit int, logger *zap.Logger) *Engine {
	return &Engine{
		L:      NewSandboxedState(instLimit),
		limit:  normalizeLimit(instLimit),
		logger: logger,
	}
}

// Close releases the VM.
func (e *Engine) Close() {
	e.L.Close()
}

// run executes fn under a fresh instruction budget. Nested calls share the outermost budget.
func (e *Engine) run(fn func() error) error {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > 1 {
		return fn()
	}
	return withBudget(e.L, e.limit, fn)
}

// Compile loads source for the item itemName and runs its top level once, which
// is expected to define any of on_pickup, on_dropped and on_used.
//
// Postcondition: Returns an Effect dispatching to the defined hooks, or a non-nil error.
func (e *Engine) Compile(itemName, source string) (item.Effect, error) {
	fn, err := e.L.LoadString(source)
	if err != nil {
		return nil, fmt.Errorf("scripting: compiling %q: %w", itemName, err)
	}
	env := e.L.NewTable()
	mt := e.L.NewTable()
	mt.RawSetString("__index", e.L.Get(lua.GlobalsIndex))
	e.L.SetMetatable(env, mt)
	e.L.SetFEnv(fn, env)

	err = e.run(func() error {
		return e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	})
	if err != nil {
		return nil, fmt.Errorf("scripting: running %q: %w", itemName, err)
	}
	return &Effect{engine: e, name: itemName, env: env}, nil
}

// call invokes hook from env with a player table bound to h and the item name.
// Missing hooks are no-ops; Lua runtime errors are logged at Warn level and never propagated.
func (e *Engine) call(env *lua.LTable, itemName, hook string, h item.Holder, it *item.Item) {
	fn, ok := env.RawGetString(hook).(*lua.LFunction)
	if !ok {
		return
	}
	player := e.playerTable(h, it)
	err := e.run(func() error {
		return e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, player, lua.LString(itemName))
	})
	if err != nil {
		e.logger.Warn("scripting: Lua runtime error",
			zap.String("item", itemName),
			zap.String("hook", hook),
			zap.Error(err),
		)
	}
}

// playerTable exposes h to Lua. Functions accept both p.f(x) and p:f(x) call styles.
func (e *Engine) playerTable(h item.Holder, it *item.Item) *lua.LTable {
	L := e.L
	t := L.NewTable()
	set := func(name string, fn lua.LGFunction) {
		t.RawSetString(name, L.NewFunction(fn))
	}
	set("damage", func(L *lua.LState) int {
		L.Push(lua.LNumber(h.Damage()))
		return 1
	})
	set("set_damage", func(L *lua.LState) int {
		h.SetDamage(intArg(L))
		return 0
	})
	set("add_damage", func(L *lua.LState) int {
		h.SetDamage(h.Damage() + intArg(L))
		return 0
	})
	set("health", func(L *lua.LState) int {
		L.Push(lua.LNumber(h.Health()))
		return 1
	})
	set("heal", func(L *lua.LState) int {
		h.Heal(intArg(L))
		return 0
	})
	set("consume", func(L *lua.LState) int {
		L.Push(lua.LBool(h.DropItem(it) != nil))
		return 1
	})
	return t
}

func intArg(L *lua.LState) int {
	n := 1
	if L.Get(1).Type() == lua.LTTable {
		n = 2
	}
	return L.CheckInt(n)
}
