// Package session runs games: it turns typed command lines into moves, fights
// and item handling against one player's private world.
package session

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/cory-johannsen/castle/internal/game/command"
	"github.com/cory-johannsen/castle/internal/game/inventory"
	"github.com/cory-johannsen/castle/internal/game/player"
	"github.com/cory-johannsen/castle/internal/game/world"
	"github.com/cory-johannsen/castle/internal/observability"
)

// Status is the state of a game after a command.
type Status int

const (
	// Continue means the game goes on.
	Continue Status = iota
	// Victory means the goal item reached the goal room.
	Victory
	// Defeat means the player died.
	Defeat
	// Exit means the player left.
	Exit
)

// String returns a short lowercase name for the status.
func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Reply is the outcome of one command line.
type Reply struct {
	// Lines are the messages to show the player, without trailing newlines.
	Lines []string
	// Status is the game state after the command.
	Status Status
	// Ending is the closing banner. Empty while Status is Continue.
	Ending []string
}

// Session is one game in progress. A Session is not safe for concurrent use;
// each connection owns its own.
type Session struct {
	id       string
	game     *world.Game
	player   *player.Player
	room     *world.Room
	registry *command.Registry
	metrics  *observability.Metrics
	logger   *zap.Logger
	previous string
	status   Status
	closer   func()
}

// New starts a game for p in game.Start. metrics may be nil.
//
// Precondition: game, p, registry and logger must be non-nil.
// Postcondition: Status() == Continue and Room() == game.Start.
func New(id string, game *world.Game, p *player.Player, registry *command.Registry, metrics *observability.Metrics, logger *zap.Logger) *Session {
	return &Session{
		id:       id,
		game:     game,
		player:   p,
		room:     game.Start,
		registry: registry,
		metrics:  metrics,
		logger:   logger.With(zap.String("session", id)),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Player returns the session's player.
func (s *Session) Player() *player.Player { return s.player }

// Room returns the room the player is in.
func (s *Session) Room() *world.Room { return s.room }

// Game returns the session's world.
func (s *Session) Game() *world.Game { return s.game }

// Status returns the current game state.
func (s *Session) Status() Status { return s.status }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.status != Continue }

// Close releases resources tied to the session's world. Safe to call more than once.
func (s *Session) Close() {
	if s.closer != nil {
		s.closer()
		s.closer = nil
	}
}

// Handle executes one command line. A blank line repeats the previous command.
// Once the game is over every call returns the final status and no lines.
//
// Postcondition: Reply.Ending is set exactly once, on the call that ends the game.
func (s *Session) Handle(line string) Reply {
	if s.Over() {
		return Reply{Status: s.status}
	}
	if strings.TrimSpace(line) == "" {
		line = s.previous
	} else {
		s.previous = line
	}

	parsed := command.Parse(line)
	cmd, ok := s.registry.Resolve(parsed.Command)
	if parsed.Empty() || !ok {
		return Reply{Lines: []string{"Invalid Command."}, Status: Continue}
	}
	s.metrics.CommandExecuted(cmd.Name)
	s.logger.Debug("command",
		zap.String("command", cmd.Name),
		zap.String("target", parsed.Target()),
		zap.String("room", s.room.Name()),
	)

	var lines []string
	status := Continue
	switch cmd.Handler {
	case command.HandlerMove:
		lines, status = s.move(cmd.Name)
	case command.HandlerLook:
		lines = []string{"You looked around. " + s.room.Description()}
	case command.HandlerKill:
		lines, status = s.kill(parsed.Target())
	case command.HandlerKillFirst:
		lines, status = s.killFirst()
	case command.HandlerGet:
		lines = s.get(parsed.Target())
	case command.HandlerDrop:
		lines = s.drop(parsed.Target())
	case command.HandlerUse:
		lines, status = s.use(parsed.Command, parsed.Target())
	case command.HandlerInventory:
		lines = split(s.player.Inventory().String())
	case command.HandlerStatus:
		lines = split(s.player.String())
	case command.HandlerUnlock:
		lines = s.unlock()
	case command.HandlerHelp:
		lines = s.help()
	case command.HandlerExit:
		status = Exit
	default:
		lines = []string{"Invalid Command."}
	}

	reply := Reply{Lines: lines, Status: status}
	if status != Continue {
		s.status = status
		reply.Ending = s.Ending()
		s.metrics.GameFinished(status.String())
		s.logger.Info("game over",
			zap.Stringer("status", status),
			zap.Int("score", s.player.XP()),
		)
	}
	return reply
}

// Ending returns the closing banner for the current status.
func (s *Session) Ending() []string {
	var headline string
	switch s.status {
	case Victory:
		headline = "You Win"
	case Defeat:
		headline = "You Lost"
	case Exit:
		headline = "Exitting..."
	default:
		return nil
	}
	return []string{
		headline,
		fmt.Sprintf("Score: %d", s.player.XP()),
		"Thank You for playing Adventure Game!!",
	}
}

func (s *Session) move(name string) ([]string, Status) {
	dir, err := world.ParseDirection(name)
	if err != nil {
		return []string{"Invalid Command."}, Continue
	}
	next, ok := s.room.Neighbor(dir)
	if !ok {
		return []string{fmt.Sprintf("There is no room to the %s", dir)}, Continue
	}
	if next.IsLocked() {
		return []string{"The room is locked you must find a way to unlock it."}, Continue
	}
	s.room = next
	lines := []string{fmt.Sprintf("You go %s to %s", dir, next.Name())}
	if next == s.game.GoalRoom && s.game.GoalItem != "" && s.player.Holds(s.game.GoalItem) {
		return lines, Victory
	}
	return lines, Continue
}

func (s *Session) kill(target string) ([]string, Status) {
	if target == "" {
		return []string{"Usage: kill {monster}"}, Continue
	}
	name := target
	if e := s.room.Enemy(target); e != nil {
		name = e.Name()
	}
	before := s.player.Health()
	status := s.room.KillEnemy(target, s.player)
	if status == world.NoEnemy {
		s.metrics.KillAttempted(status.String())
		return []string{fmt.Sprintf("There is no %s in the room.", target)}, Continue
	}
	return s.fought(name, before, status)
}

func (s *Session) killFirst() ([]string, Status) {
	enemies := s.room.Enemies()
	if len(enemies) == 0 {
		s.metrics.KillAttempted(world.NoEnemy.String())
		return []string{"There is no enemies here. "}, Continue
	}
	before := s.player.Health()
	status := s.room.KillEnemyAt(0, s.player)
	return s.fought(enemies[0].Name(), before, status)
}

func (s *Session) fought(name string, before int, status world.KillStatus) ([]string, Status) {
	s.metrics.KillAttempted(status.String())
	s.logger.Debug("fight",
		zap.String("enemy", name),
		zap.Stringer("result", status),
		zap.Int("health", s.player.Health()),
	)
	switch status {
	case world.KillFailure:
		return []string{fmt.Sprintf("You died while trying to kill %s.", name)}, Defeat
	case world.AlreadyDead:
		return []string{fmt.Sprintf("The %s is already dead.", name)}, Continue
	case world.KillSuccess:
		lines := []string{fmt.Sprintf("You killed the %s. It dealt %d damage to you. ", name, before-s.player.Health())}
		return append(lines, split(s.player.String())...), Continue
	default:
		return []string{"There is no enemies here. "}, Continue
	}
}

func (s *Session) get(target string) []string {
	if target == "" {
		return []string{"Usage: get {item}"}
	}
	it := s.room.Item(target)
	if it == nil {
		return []string{fmt.Sprintf("There is no item %s in the room.", target)}
	}
	status := s.player.Inventory().Check(it, inventory.AutoSlot)
	if status == inventory.Success {
		s.room.RemoveItem(it)
		if status = s.player.AddItem(it); status != inventory.Success {
			s.room.AddItem(it)
		}
	}
	switch status {
	case inventory.Success:
		return []string{fmt.Sprintf("You added %s to your inventory.", it.Name())}
	case inventory.CannotPickup:
		return []string{fmt.Sprintf("%s cannot be picked up.", it.Name())}
	case inventory.NoSpace:
		return []string{"There is no space in your inventory left"}
	case inventory.AlreadyHeld:
		return []string{fmt.Sprintf("You already have %s.", it.Name())}
	default:
		return []string{"The item cannot be added."}
	}
}

func (s *Session) drop(target string) []string {
	if target == "" {
		return []string{"Usage: drop {item}"}
	}
	it := s.player.DropItemNamed(target)
	if it == nil {
		return []string{fmt.Sprintf("Item %s not in inventory.", target)}
	}
	s.room.AddItem(it)
	return []string{fmt.Sprintf("You dropped %s on the floor.", it.Name())}
}

func (s *Session) use(verb, target string) ([]string, Status) {
	if target == "" {
		return []string{fmt.Sprintf("Usage: %s {item}", verb)}, Continue
	}
	it := s.player.Inventory().Get(target)
	if it == nil {
		return []string{fmt.Sprintf("You don't have any %s in your inventory.", target)}, Continue
	}
	s.player.UseItem(it)
	var msg string
	switch verb {
	case "eat":
		msg = fmt.Sprintf("You ate the %s.", it.Name())
	case "drink":
		msg = fmt.Sprintf("You drank the %s.", it.Name())
	default:
		msg = fmt.Sprintf("You used the %s.", it.Name())
	}
	if s.player.IsDead() {
		return []string{msg, fmt.Sprintf("The %s killed you.", it.Name())}, Defeat
	}
	return append([]string{msg}, split(s.player.String())...), Continue
}

// unlock opens every adjacent locked room whose key the player holds.
func (s *Session) unlock() []string {
	if !s.holdsAnyKey() {
		return []string{"You don't have any keys to unlock doors."}
	}
	var lines []string
	for _, ex := range s.room.Exits() {
		r := ex.Room
		if !r.IsLocked() || r.Key() == "" || !s.player.Holds(r.Key()) {
			continue
		}
		r.Unlock()
		lines = append(lines, fmt.Sprintf("You unlocked %s with your %s", r.Name(), strings.ToLower(r.Key())))
	}
	if len(lines) == 0 {
		return []string{"There is no room to be unlocked."}
	}
	return lines
}

func (s *Session) holdsAnyKey() bool {
	for _, r := range s.game.Map.Rooms() {
		if r.Key() != "" && s.player.Holds(r.Key()) {
			return true
		}
	}
	return false
}

// help lists commands in registration order with their aliases and help text in aligned columns.
func (s *Session) help() []string {
	cmds := s.registry.Commands()
	heads := make([]string, len(cmds))
	width := 0
	for i, cmd := range cmds {
		head := cmd.Synopsis()
		if len(cmd.Aliases) > 0 {
			head += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		heads[i] = head
		if w := runewidth.StringWidth(head); w > width {
			width = w
		}
	}
	lines := make([]string, len(cmds))
	for i, cmd := range cmds {
		lines[i] = runewidth.FillRight(heads[i], width) + "  " + cmd.Help
	}
	return lines
}

func split(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
