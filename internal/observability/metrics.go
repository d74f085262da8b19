package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names.
const (
	MetricCommandsTotal      = "castle_commands_total"
	MetricKillAttemptsTotal  = "castle_kill_attempts_total"
	MetricGamesFinishedTotal = "castle_games_finished_total"
	MetricSessionsActive     = "castle_sessions_active"
	MetricConnectionsTotal   = "castle_connections_total"
)

// Label names.
const (
	LabelCommand = "command"
	LabelStatus  = "status"
	LabelResult  = "result"
)

// Metrics holds the game's Prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	commands    *prometheus.CounterVec
	kills       *prometheus.CounterVec
	games       *prometheus.CounterVec
	sessions    prometheus.Gauge
	connections prometheus.Counter
}

// NewMetrics registers the game's collectors with reg.
//
// Precondition: reg must be non-nil and must not already hold these collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		commands: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricCommandsTotal,
			Help: "Commands executed, by canonical command name.",
		}, []string{LabelCommand}),
		kills: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricKillAttemptsTotal,
			Help: "Kill attempts, by outcome.",
		}, []string{LabelStatus}),
		games: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricGamesFinishedTotal,
			Help: "Games that ended, by result.",
		}, []string{LabelResult}),
		sessions: f.NewGauge(prometheus.GaugeOpts{
			Name: MetricSessionsActive,
			Help: "Games currently in progress.",
		}),
		connections: f.NewCounter(prometheus.CounterOpts{
			Name: MetricConnectionsTotal,
			Help: "Telnet connections accepted.",
		}),
	}
}

// CommandExecuted counts one execution of the named command.
func (m *Metrics) CommandExecuted(name string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(name).Inc()
}

// KillAttempted counts one kill attempt ending in status.
func (m *Metrics) KillAttempted(status string) {
	if m == nil {
		return
	}
	m.kills.WithLabelValues(status).Inc()
}

// GameFinished counts one game ending with result.
func (m *Metrics) GameFinished(result string) {
	if m == nil {
		return
	}
	m.games.WithLabelValues(result).Inc()
}

// SessionStarted increments the active session gauge.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessions.Inc()
}

// SessionEnded decrements the active session gauge.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.sessions.Dec()
}

// ConnectionAccepted counts one accepted connection.
func (m *Metrics) ConnectionAccepted() {
	if m == nil {
		return
	}
	m.connections.Inc()
}
