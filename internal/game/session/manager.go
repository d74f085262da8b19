package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/castle/internal/config"
	"github.com/cory-johannsen/castle/internal/game/command"
	"github.com/cory-johannsen/castle/internal/game/player"
	"github.com/cory-johannsen/castle/internal/game/world"
	"github.com/cory-johannsen/castle/internal/observability"
	"github.com/cory-johannsen/castle/internal/scripting"
)

var (
	// ErrSessionNotFound is returned when no active session has the given ID.
	ErrSessionNotFound = errors.New("session not found")
	// ErrTooManySessions is returned by Start when the session limit is reached.
	ErrTooManySessions = errors.New("too many sessions")
)

// ManagerConfig holds what every new game is built from.
type ManagerConfig struct {
	// Blueprint is the world each session gets a private copy of.
	Blueprint *world.Blueprint
	// Rules are the player's starting stats and the script budget.
	Rules config.GameConfig
	// MaxSessions caps concurrent games. 0 means unlimited.
	MaxSessions int
	// Registry resolves commands. Nil uses command.DefaultRegistry.
	Registry *command.Registry
	// Metrics may be nil.
	Metrics *observability.Metrics
	Logger  *zap.Logger
}

// Manager tracks all active sessions.
// All methods are safe for concurrent use.
type Manager struct {
	cfg      ManagerConfig
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session Manager.
//
// Precondition: cfg.Blueprint has passed Validate; cfg.Logger must be non-nil.
func NewManager(cfg ManagerConfig) *Manager {
	if cfg.Registry == nil {
		cfg.Registry = command.DefaultRegistry()
	}
	return &Manager{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
}

// Start builds a fresh world and player and registers a new session for them.
//
// Postcondition: Returns the session under a new unique ID, or an error if the
// limit is reached or the world cannot be built.
func (m *Manager) Start() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.MaxSessions > 0 && len(m.sessions) >= m.cfg.MaxSessions {
		return nil, ErrTooManySessions
	}

	engine := scripting.NewEngine(m.cfg.Rules.ScriptInstructionLimit, m.cfg.Logger)
	game, err := m.cfg.Blueprint.Build(engine)
	if err != nil {
		engine.Close()
		return nil, fmt.Errorf("building world %q: %w", m.cfg.Blueprint.Name, err)
	}

	id := uuid.NewString()
	p := player.New(m.cfg.Rules.PlayerHealth, m.cfg.Rules.PlayerDamage, m.cfg.Rules.InventorySize)
	sess := New(id, game, p, m.cfg.Registry, m.cfg.Metrics, m.cfg.Logger)
	sess.closer = engine.Close

	m.sessions[id] = sess
	m.cfg.Metrics.SessionStarted()
	m.cfg.Logger.Info("session started",
		zap.String("session", id),
		zap.String("world", game.Name),
		zap.Int("active", len(m.sessions)),
	)
	return sess, nil
}

// Get returns the session with the given ID.
//
// Postcondition: Returns the session, or ErrSessionNotFound.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	return sess, nil
}

// End removes the session and releases its world.
//
// Postcondition: The session is no longer tracked. Returns ErrSessionNotFound if it was not.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	active := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	sess.Close()
	m.cfg.Metrics.SessionEnded()
	m.cfg.Logger.Info("session ended",
		zap.String("session", id),
		zap.Stringer("status", sess.Status()),
		zap.Int("score", sess.Player().XP()),
		zap.Int("active", active),
	)
	return nil
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// IDs returns the IDs of all active sessions, sorted.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
