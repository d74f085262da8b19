package telnet

import (
	"context"
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/castle/internal/config"
	"github.com/cory-johannsen/castle/internal/observability"
)

// echoHandler echoes lines back until "quit" or shutdown.
type echoHandler struct {
	sessions atomic.Int32
}

func (h *echoHandler) HandleSession(ctx context.Context, conn *Conn) error {
	h.sessions.Add(1)
	for {
		line, err := conn.ReadLine()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if line == "quit" {
			return conn.WriteLine("bye")
		}
		_ = conn.WriteLine("echo: " + line)
	}
}

func startAcceptor(t *testing.T, handler SessionHandler) (*Acceptor, chan error) {
	t.Helper()
	cfg := config.TelnetConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	acc := NewAcceptor(cfg, handler, observability.NewMetrics(prometheus.NewRegistry()), zaptest.NewLogger(t))
	errCh := make(chan error, 1)
	go func() { errCh <- acc.Start() }()

	select {
	case <-acc.Ready():
	case err := <-errCh:
		t.Fatalf("acceptor failed to start: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("acceptor did not start in time")
	}
	return acc, errCh
}

func readUntil(t *testing.T, conn net.Conn, substr string) string {
	t.Helper()
	var got strings.Builder
	buf := make([]byte, 256)
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for !strings.Contains(got.String(), substr) {
		n, err := conn.Read(buf)
		got.Write(buf[:n])
		if err != nil {
			t.Fatalf("reading until %q: got %q: %v", substr, got.String(), err)
		}
	}
	return got.String()
}

func TestAcceptor_EchoRoundTrip(t *testing.T) {
	handler := &echoHandler{}
	acc, errCh := startAcceptor(t, handler)
	assert.True(t, acc.IsRunning())

	conn, err := net.DialTimeout("tcp", acc.Addr(), 2*time.Second)
	require.NoError(t, err)
	defer conn.Close()

	negotiation := readUntil(t, conn, string([]byte{IAC, WILL, OptSuppressGoAhead}))
	assert.Len(t, negotiation, 3)

	_, err = conn.Write([]byte("hello\r\n"))
	require.NoError(t, err)
	assert.Contains(t, readUntil(t, conn, "\r\n"), "echo: hello")

	_, err = conn.Write([]byte("quit\r\n"))
	require.NoError(t, err)
	readUntil(t, conn, "bye")

	acc.Stop()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("acceptor did not stop in time")
	}
	assert.False(t, acc.IsRunning())
	assert.Equal(t, int32(1), handler.sessions.Load())
}

func TestAcceptor_StopInterruptsIdleSessions(t *testing.T) {
	handler := &echoHandler{}
	acc, errCh := startAcceptor(t, handler)

	const clients = 3
	for i := 0; i < clients; i++ {
		conn, err := net.DialTimeout("tcp", acc.Addr(), 2*time.Second)
		require.NoError(t, err)
		defer conn.Close()
		readUntil(t, conn, string([]byte{IAC, WILL, OptSuppressGoAhead}))
	}

	stopped := make(chan struct{})
	go func() {
		acc.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked on idle sessions")
	}
	require.NoError(t, <-errCh)
	assert.Equal(t, int32(clients), handler.sessions.Load())
	acc.Stop()
}

func TestAcceptor_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	acc := NewAcceptor(config.TelnetConfig{Host: "127.0.0.1", Port: port}, &echoHandler{}, nil, zaptest.NewLogger(t))
	assert.ErrorContains(t, acc.Start(), "listening on")
	assert.Equal(t, "", acc.Addr())
}

func TestAcceptor_StopBeforeStart(t *testing.T) {
	acc := NewAcceptor(config.TelnetConfig{Host: "127.0.0.1", Port: 0}, &echoHandler{}, nil, zaptest.NewLogger(t))
	acc.Stop()

	errCh := make(chan error, 1)
	go func() { errCh <- acc.Start() }()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start blocked after Stop")
	}
	assert.False(t, acc.IsRunning())
	assert.Equal(t, "", acc.Addr())
	acc.Stop()
}
