// Package main provides the castle Telnet server. Every connection plays its
// own game; Prometheus metrics and a health check are served over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/cory-johannsen/castle/content"
	"github.com/cory-johannsen/castle/internal/config"
	"github.com/cory-johannsen/castle/internal/frontend/handlers"
	"github.com/cory-johannsen/castle/internal/frontend/telnet"
	"github.com/cory-johannsen/castle/internal/game/session"
	"github.com/cory-johannsen/castle/internal/observability"
	"github.com/cory-johannsen/castle/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/castled.yaml", "path to configuration file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "castled")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bp, err := content.Load(cfg.Game.WorldFile)
	if err != nil {
		logger.Fatal("loading world", zap.String("path", cfg.Game.WorldFile), zap.Error(err))
	}
	logger.Info("world loaded",
		zap.String("world", bp.Name),
		zap.Int("rooms", len(bp.Rooms)),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)

	sessions := session.NewManager(session.ManagerConfig{
		Blueprint:   bp,
		Rules:       cfg.Game,
		MaxSessions: cfg.Telnet.MaxSessions,
		Metrics:     metrics,
		Logger:      logger,
	})
	acceptor := telnet.NewAcceptor(cfg.Telnet, handlers.NewGameHandler(sessions, logger), metrics, logger)

	lifecycle := server.NewLifecycle(logger)
	if cfg.Metrics.Enabled {
		lifecycle.Add("metrics", server.NewHTTPService(cfg.Metrics.Addr(), observability.NewRouter(reg, logger), logger))
	}
	lifecycle.Add("telnet", acceptor)

	logger.Info("castled initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("telnet_addr", cfg.Telnet.Addr()),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
