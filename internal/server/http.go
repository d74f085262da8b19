package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// HTTPService runs an http.Handler as a lifecycle Service.
type HTTPService struct {
	srv             *http.Server
	shutdownTimeout time.Duration
	logger          *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	ready    chan struct{}
}

// NewHTTPService creates a Service serving handler on addr.
//
// Precondition: handler and logger must be non-nil.
func NewHTTPService(addr string, handler http.Handler, logger *zap.Logger) *HTTPService {
	return &HTTPService{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: 5 * time.Second,
		logger:          logger,
		ready:           make(chan struct{}),
	}
}

// Start listens and serves until Stop is called.
func (h *HTTPService) Start() error {
	ln, err := net.Listen("tcp", h.srv.Addr)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.listener = ln
	h.mu.Unlock()
	close(h.ready)

	h.logger.Info("http listening", zap.String("addr", ln.Addr().String()))
	if err := h.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down, waiting up to the shutdown timeout for in-flight requests.
func (h *HTTPService) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()
	if err := h.srv.Shutdown(ctx); err != nil {
		h.logger.Warn("http shutdown", zap.Error(err))
	}
}

// Ready is closed once the listener is bound.
func (h *HTTPService) Ready() <-chan struct{} { return h.ready }

// Addr returns the bound address, or nil before Start has bound.
func (h *HTTPService) Addr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}
