// Package handlers connects Telnet clients to game sessions.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/castle/internal/frontend/telnet"
	"github.com/cory-johannsen/castle/internal/game/session"
)

// Prompt is shown before every command.
const Prompt = "Enter Command (help for help): "

// GameHandler implements telnet.SessionHandler by running one game per connection.
type GameHandler struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewGameHandler creates a GameHandler that starts games from sessions.
//
// Precondition: sessions and logger must be non-nil.
func NewGameHandler(sessions *session.Manager, logger *zap.Logger) *GameHandler {
	return &GameHandler{sessions: sessions, logger: logger}
}

// HandleSession implements telnet.SessionHandler. It plays one game to its end.
//
// Postcondition: Returns nil when the game ends, ctx.Err() on shutdown, or the I/O error
// that ended the connection. The game's session is always released.
func (h *GameHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	sess, err := h.sessions.Start()
	if errors.Is(err, session.ErrTooManySessions) {
		_ = conn.WriteLine(telnet.Colorize("The castle is full. Please try again later.", telnet.Yellow))
		return err
	}
	if err != nil {
		_ = conn.WriteLine(telnet.Colorize("The game could not be started.", telnet.Red))
		return fmt.Errorf("starting session: %w", err)
	}
	defer func() { _ = h.sessions.End(sess.ID()) }()

	h.logger.Info("game started",
		zap.String("session", sess.ID()),
		zap.String("remote_addr", conn.RemoteAddr().String()),
	)
	if err := conn.WriteLines(Welcome(sess)); err != nil {
		return fmt.Errorf("sending welcome: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			_ = conn.WriteLine(telnet.Colorize("Server shutting down. Goodbye!", telnet.Yellow))
			return err
		}
		if err := conn.WritePrompt(telnet.Colorize(Prompt, telnet.BrightWhite)); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}
		line, err := conn.ReadLine()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("reading input: %w", err)
		}

		reply := sess.Handle(strings.ToLower(line))
		if err := conn.WriteLines(reply.Lines); err != nil {
			return fmt.Errorf("writing reply: %w", err)
		}
		if reply.Status != session.Continue {
			return conn.WriteLines(Banner(reply.Status, reply.Ending))
		}
	}
}

// Welcome returns the lines shown when a game begins.
func Welcome(sess *session.Session) []string {
	return []string{
		telnet.Colorize("Welcome to the "+sess.Game().Name+"!", telnet.Bold, telnet.BrightCyan),
		telnet.Colorize(sess.Room().Description(), telnet.White),
	}
}

// Banner colors the ending lines by how the game ended: the headline in the
// status color, the score highlighted, the farewell dimmed.
func Banner(status session.Status, ending []string) []string {
	color := telnet.BrightYellow
	switch status {
	case session.Victory:
		color = telnet.BrightGreen
	case session.Defeat:
		color = telnet.BrightRed
	}
	out := make([]string, len(ending))
	for i, line := range ending {
		switch i {
		case 0:
			out[i] = telnet.Colorize(line, telnet.Bold, color)
		case 1:
			out[i] = telnet.Colorize(line, telnet.Cyan)
		default:
			out[i] = telnet.Colorize(line, telnet.Dim)
		}
	}
	return out
}
