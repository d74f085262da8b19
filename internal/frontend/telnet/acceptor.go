package telnet

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/castle/internal/config"
	"github.com/cory-johannsen/castle/internal/observability"
)

// SessionHandler runs the command loop for a single client.
// ctx is cancelled when the acceptor stops.
type SessionHandler interface {
	HandleSession(ctx context.Context, conn *Conn) error
}

// Acceptor listens for Telnet connections and hands each one to a SessionHandler
// on its own goroutine. It satisfies server.Service.
type Acceptor struct {
	cfg     config.TelnetConfig
	handler SessionHandler
	metrics *observability.Metrics
	logger  *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	running  bool
	stopped  bool
	ready    chan struct{}
	quit     chan struct{}
	wg       sync.WaitGroup
}

// NewAcceptor creates a Telnet acceptor. metrics may be nil.
//
// Precondition: handler and logger must be non-nil.
// Postcondition: Returns an Acceptor ready to be started with Start.
func NewAcceptor(cfg config.TelnetConfig, handler SessionHandler, metrics *observability.Metrics, logger *zap.Logger) *Acceptor {
	return &Acceptor{
		cfg:     cfg,
		handler: handler,
		metrics: metrics,
		logger:  logger,
		ready:   make(chan struct{}),
		quit:    make(chan struct{}),
	}
}

// Start listens on the configured address and accepts connections until Stop is called.
// It blocks until the acceptor is stopped.
//
// Precondition: Start must be called at most once.
// Postcondition: Returns nil after Stop, or the listen error. Returns nil at once
// if Stop ran first.
func (a *Acceptor) Start() error {
	listener, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.cfg.Addr(), err)
	}

	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		_ = listener.Close()
		return nil
	}
	a.listener = listener
	a.running = true
	a.mu.Unlock()
	close(a.ready)

	a.logger.Info("telnet acceptor listening", zap.String("addr", listener.Addr().String()))

	for {
		raw, err := listener.Accept()
		if err != nil {
			select {
			case <-a.quit:
				return nil
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			a.logger.Error("accepting connection", zap.Error(err))
			continue
		}
		// wg.Add must not race the Wait in Stop.
		a.mu.Lock()
		if a.stopped {
			a.mu.Unlock()
			_ = raw.Close()
			return nil
		}
		a.wg.Add(1)
		a.mu.Unlock()
		a.metrics.ConnectionAccepted()
		go a.serve(raw)
	}
}

func (a *Acceptor) serve(raw net.Conn) {
	defer a.wg.Done()
	start := time.Now()
	addr := raw.RemoteAddr().String()
	a.logger.Info("client connected", zap.String("remote_addr", addr))

	conn := NewConn(raw, a.cfg.ReadTimeout, a.cfg.WriteTimeout)
	defer conn.Close()

	if err := conn.Negotiate(); err != nil {
		a.logger.Warn("telnet negotiation failed", zap.String("remote_addr", addr), zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-a.quit:
			cancel()
			// Unblock a pending ReadLine so the handler can observe ctx.
			_ = conn.Close()
		case <-ctx.Done():
		}
	}()

	err := a.handler.HandleSession(ctx, conn)
	fields := []zap.Field{zap.String("remote_addr", addr), zap.Duration("duration", time.Since(start))}
	if err != nil {
		a.logger.Debug("client disconnected", append(fields, zap.Error(err))...)
		return
	}
	a.logger.Info("client finished", fields...)
}

// Stop closes the listener and every open connection, then waits for handlers to return.
// Safe to call more than once, and before Start.
func (a *Acceptor) Stop() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.stopped = true
	a.running = false
	close(a.quit)
	if a.listener != nil {
		_ = a.listener.Close()
	}
	a.mu.Unlock()

	a.wg.Wait()
	a.logger.Info("telnet acceptor stopped")
}

// Ready is closed once the listener is bound.
func (a *Acceptor) Ready() <-chan struct{} { return a.ready }

// Addr returns the bound address, or "" before Start has bound it.
func (a *Acceptor) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// IsRunning reports whether the acceptor is accepting connections.
func (a *Acceptor) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}
