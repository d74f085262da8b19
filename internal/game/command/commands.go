// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategoryCombat   = "combat"
	CategoryItems    = "items"
	CategorySystem   = "system"
)

// Handler identifiers mapping commands to session handlers.
const (
	HandlerMove      = "move"
	HandlerLook      = "look"
	HandlerKill      = "kill"
	HandlerKillFirst = "killfirst"
	HandlerGet       = "get"
	HandlerDrop      = "drop"
	HandlerUse       = "use"
	HandlerInventory = "inventory"
	HandlerStatus    = "status"
	HandlerUnlock    = "unlock"
	HandlerHelp      = "help"
	HandlerExit      = "exit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument placeholder, e.g. "{item}". Empty when the command takes none.
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command.
	Category string
	// Handler names the session handler that executes the command.
	Handler string
}

// Synopsis returns the command name followed by its usage.
func (c *Command) Synopsis() string {
	if c.Usage == "" {
		return c.Name
	}
	return c.Name + " " + c.Usage
}

// BuiltinCommands returns all built-in commands for the game, in help order.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "north", Aliases: []string{"n"}, Help: "Go to the room north.", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Go to the room south.", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Go to the room east.", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Go to the room west.", Category: CategoryMovement, Handler: HandlerMove},

		{Name: "look", Aliases: []string{"l"}, Help: "Shows what is in the room.", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "unlock", Usage: "{door}", Help: "Unlocks the locked rooms next to you.", Category: CategoryWorld, Handler: HandlerUnlock},

		{Name: "killmonster", Aliases: []string{"km"}, Help: "Kills the monster in the room.", Category: CategoryCombat, Handler: HandlerKillFirst},
		{Name: "kill", Usage: "{monster}", Help: "Kills the monster with the name {monster}.", Category: CategoryCombat, Handler: HandlerKill},

		{Name: "get", Aliases: []string{"take"}, Usage: "{item}", Help: "Gets the item with the name {item}.", Category: CategoryItems, Handler: HandlerGet},
		{Name: "drop", Usage: "{item}", Help: "Drops the item with the name {item}.", Category: CategoryItems, Handler: HandlerDrop},
		{Name: "use", Aliases: []string{"eat", "drink"}, Usage: "{item}", Help: "Uses the item with the name {item}.", Category: CategoryItems, Handler: HandlerUse},
		{Name: "inventory", Aliases: []string{"i", "inv"}, Help: "Shows the player's inventory.", Category: CategoryItems, Handler: HandlerInventory},
		{Name: "status", Aliases: []string{"stats"}, Help: "Shows the player's health, damage and score.", Category: CategoryItems, Handler: HandlerStatus},

		{Name: "help", Aliases: []string{"?"}, Help: "Shows this list.", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "exit", Aliases: []string{"quit"}, Help: "Leaves the game.", Category: CategorySystem, Handler: HandlerExit},
	}
}
